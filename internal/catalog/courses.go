package catalog

import "github.com/jonathan/skillsync/internal/types"

var courses = []types.Course{
	{Title: "Complete Machine Learning & Data Science Bootcamp", Provider: "Coursera", Type: types.CourseTypeOnline, Rating: 4.8, Students: "250K+", Duration: "6 months", Price: "₹3,999/month", Level: types.LevelIntermediate, Skills: []string{"Python", "Machine Learning", "Data Analysis"}, Certificate: true, MatchScore: 98},
	{Title: "AWS Certified Solutions Architect", Provider: "Udemy", Type: types.CourseTypeOnline, Rating: 4.7, Students: "180K+", Duration: "4 months", Price: "₹799 one-time", Level: types.LevelAdvanced, Skills: []string{"Cloud Computing", "AWS", "DevOps"}, Certificate: true, MatchScore: 92},
	{Title: "Full Stack Web Development", Provider: "edX", Type: types.CourseTypeOnline, Rating: 4.6, Students: "120K+", Duration: "8 months", Price: "Free (cert ₹999)", Level: types.LevelBeginner, Skills: []string{"JavaScript", "React", "Node.js"}, Certificate: true, MatchScore: 88},
	{Title: "Data Structures and Algorithms Specialization", Provider: "Coursera", Type: types.CourseTypeOnline, Rating: 4.9, Students: "300K+", Duration: "5 months", Price: "₹3,999/month", Level: types.LevelIntermediate, Skills: []string{"Algorithms", "Problem Solving", "Python"}, Certificate: true, MatchScore: 95},
	{Title: "UX Design Professional Certificate", Provider: "Google", Type: types.CourseTypeOnline, Rating: 4.8, Students: "200K+", Duration: "6 months", Price: "₹3,199/month", Level: types.LevelBeginner, Skills: []string{"UX Design", "Figma", "User Research"}, Certificate: true, MatchScore: 85},
	{Title: "Professional Data Science Bootcamp", Provider: "upGrad", Type: types.CourseTypeHybrid, Rating: 4.7, Students: "15K+", Duration: "3 months", Price: "₹1,25,000", Level: types.LevelIntermediate, Skills: []string{"Python", "Machine Learning", "Statistics"}, Certificate: true, MatchScore: 94},
	{Title: "Advanced SQL for Data Analytics", Provider: "DataCamp", Type: types.CourseTypeOnline, Rating: 4.6, Students: "90K+", Duration: "2 months", Price: "₹2,000/month", Level: types.LevelIntermediate, Skills: []string{"SQL", "Database Management", "Data Analysis"}, Certificate: true, MatchScore: 87},
	{Title: "Leadership and Communication Skills", Provider: "LinkedIn Learning", Type: types.CourseTypeOnline, Rating: 4.5, Students: "150K+", Duration: "1 month", Price: "₹2,499/month", Level: types.LevelBeginner, Skills: []string{"Leadership", "Communication", "Team Management"}, Certificate: true, MatchScore: 82},
	{Title: "Product Management Fundamentals", Provider: "IIM Bangalore", Type: types.CourseTypeHybrid, Rating: 4.8, Students: "8K+", Duration: "4 months", Price: "₹85,000", Level: types.LevelIntermediate, Skills: []string{"Product Management", "Strategy", "Agile"}, Certificate: true, MatchScore: 90},
	{Title: "Fashion Design Diploma", Provider: "NIFT Online", Type: types.CourseTypeOnline, Rating: 4.7, Students: "12K+", Duration: "12 months", Price: "₹60,000", Level: types.LevelBeginner, Skills: []string{"Fashion Design", "Textile", "Pattern Making"}, Certificate: true, MatchScore: 86},
	{Title: "Law Entrance Preparation", Provider: "LawSikho", Type: types.CourseTypeOnline, Rating: 4.6, Students: "25K+", Duration: "6 months", Price: "₹25,000", Level: types.LevelBeginner, Skills: []string{"Legal Research", "Constitutional Law", "Critical Thinking"}, Certificate: true, MatchScore: 83},
	{Title: "Clinical Psychology Certification", Provider: "IGNOU", Type: types.CourseTypeHybrid, Rating: 4.8, Students: "10K+", Duration: "8 months", Price: "₹15,000", Level: types.LevelIntermediate, Skills: []string{"Psychology", "Therapy", "Counseling", "Mental Health"}, Certificate: true, MatchScore: 89},
}

// Courses returns the course catalog in definition order.
func Courses() []types.Course {
	out := make([]types.Course, len(courses))
	for i, c := range courses {
		c.Skills = append([]string(nil), c.Skills...)
		out[i] = c
	}
	return out
}
