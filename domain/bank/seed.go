package bank

import (
	"skillprep/models"
)

// Seed returns the built-in question corpus. Ids are assigned in
// declaration order starting at 1; the corpus is immutable reference
// data and is never mutated after loading.
func Seed() []models.Question {
	data := []models.Question{
		{
			Title:        "Explaining Technical Concepts to Non-Technical Stakeholders",
			Description:  "You're a senior developer working on a complex microservices architecture. During a sprint review, the product manager asks you to explain why the recent API response times have increased and what your team is doing to address it. How would you communicate this technical issue in a way that's accessible to non-technical stakeholders while maintaining accuracy?",
			Category:     models.CategoryCommunication,
			Role:         models.RoleSoftwareDeveloper,
			Difficulty:   models.DifficultySenior,
			SampleAnswer: "I would start by setting context and using analogies. For example, 'Think of our system like a busy restaurant. Recently, we've had more customers (traffic) than usual, and our kitchen (servers) is taking longer to prepare orders. The issue isn't with the quality of food, but with how we're handling the increased volume.' Then I'd explain the business impact: 'This translates to users waiting an extra 2-3 seconds for pages to load, which could impact user satisfaction and potentially conversions.' Finally, I'd provide a clear solution and timeline: 'We're implementing two solutions: optimizing our kitchen workflow (code optimization) by next sprint, and adding more cooking stations (server capacity) within two weeks. This should reduce response times by 60%.'",
			Tips:         []string{"Use analogies or real-world comparisons", "Focus on business impact rather than technical details", "Provide clear next steps and timelines", "Acknowledge concerns and show empathy"},
			Keywords:     []string{"communication", "stakeholder management", "technical translation", "business impact"},
		},
		{
			Title:        "Code Review Feedback",
			Description:  "A junior developer on your team has submitted a pull request with code that works but doesn't follow best practices. The code is poorly structured, lacks proper error handling, and doesn't include tests. How would you provide constructive feedback that helps them improve without discouraging them?",
			Category:     models.CategoryCollaboration,
			Role:         models.RoleSoftwareDeveloper,
			Difficulty:   models.DifficultyMid,
			SampleAnswer: "I would start by acknowledging what they did well: 'Great job getting the feature working and handling the edge cases in the user interface.' Then I'd frame improvements as learning opportunities: 'I see some areas where we can make this code even more robust and maintainable.' I'd provide specific, actionable feedback with examples: 'For error handling, we could add try-catch blocks around the API calls. Here's how we typically structure that...' I'd also offer to pair program: 'Would you like to hop on a call tomorrow to refactor this together? I can show you some patterns we use for testing these types of components.'",
			Tips:         []string{"Start with positive feedback", "Be specific and actionable", "Offer to help and teach", "Frame as learning opportunities"},
			Keywords:     []string{"code review", "mentoring", "constructive feedback", "team collaboration"},
		},
		{
			Title:        "Handling Conflicting Priorities",
			Description:  "You're working as a tech lead and receive conflicting priorities from two different stakeholders. The product manager wants you to focus on a new feature for an upcoming demo, while the engineering manager wants you to prioritize fixing technical debt that's slowing down the team. How do you handle this situation?",
			Category:     models.CategoryLeadership,
			Role:         models.RoleTechLead,
			Difficulty:   models.DifficultySenior,
			SampleAnswer: "I would first gather all the information I need by speaking with both stakeholders separately to understand their reasoning and constraints. Then I'd schedule a meeting with both stakeholders together to facilitate a transparent discussion. I'd present the trade-offs clearly: 'If we focus on the demo feature, we'll hit the deadline but the technical debt will continue to slow our velocity by about 30%. If we address the technical debt first, we'll increase our long-term velocity but might need to push the demo by one week.' I'd also propose a compromise if possible: 'Could we scope down the demo feature to address the most critical technical debt issues first, then deliver a simplified version for the demo?'",
			Tips:         []string{"Gather information from all parties", "Facilitate transparent discussions", "Present clear trade-offs", "Look for compromise solutions"},
			Keywords:     []string{"conflict resolution", "stakeholder management", "prioritization", "leadership"},
		},
		{
			Title:        "Cross-Team Collaboration",
			Description:  "Your development team needs to integrate with an API developed by another team, but their API doesn't meet your requirements and they're reluctant to make changes. How do you approach this situation to find a solution that works for both teams?",
			Category:     models.CategoryCollaboration,
			Role:         models.RoleSoftwareDeveloper,
			Difficulty:   models.DifficultyMid,
			SampleAnswer: "I would start by understanding their perspective and constraints. I'd schedule a meeting to discuss our requirements and ask about their concerns with making changes. I'd come prepared with specific examples: 'We need the user data to include the email field for our notifications feature. Could we explore adding this to the response?' If they can't make changes, I'd look for alternative solutions: 'If modifying the API isn't possible right now, could we set up a separate endpoint for this data, or would you be open to a webhook approach?' I'd also consider if we could adapt our approach: 'We could potentially call two endpoints and merge the data on our side if that's easier for your team.'",
			Tips:         []string{"Understand their constraints", "Come with specific requirements", "Explore alternative solutions", "Be willing to adapt your approach"},
			Keywords:     []string{"cross-team collaboration", "API integration", "problem-solving", "compromise"},
		},
		{
			Title:        "Technical Architecture Decisions",
			Description:  "As a solution architect, you need to recommend whether to build a new feature using microservices or add it to the existing monolith. The team is split on the decision. How do you evaluate the options and communicate your recommendation?",
			Category:     models.CategoryTechnicalMentoring,
			Role:         models.RoleArchitect,
			Difficulty:   models.DifficultySenior,
			SampleAnswer: "I would start by defining the evaluation criteria with the team: scalability needs, team structure, timeline, complexity, and maintenance overhead. Then I'd analyze each option systematically: 'For the monolith approach, we can deliver faster (2-3 weeks vs 4-5 weeks), leverage existing code, but we'll increase coupling and deployment risk. For microservices, we get better scalability and team autonomy, but we add network complexity and operational overhead.' I'd present data: 'Based on our traffic projections, we won't need the scalability benefits of microservices for at least 18 months.' Finally, I'd make a clear recommendation with reasoning: 'I recommend starting with the monolith approach for speed, with a clear plan to extract it to a microservice when we hit 10x current traffic or when we have a dedicated team for this domain.'",
			Tips:         []string{"Define clear evaluation criteria", "Analyze systematically with data", "Consider team and business context", "Provide clear reasoning for recommendations"},
			Keywords:     []string{"architecture decisions", "technical strategy", "trade-off analysis", "team alignment"},
		},
	}

	for i := range data {
		data[i].ID = i + 1
	}
	return data
}
