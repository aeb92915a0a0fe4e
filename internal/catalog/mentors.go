package catalog

import "github.com/jonathan/skillsync/internal/types"

var mentors = []types.Mentor{
	{ID: "1", Name: "Priya Sharma", Role: "Senior Data Scientist", Company: "Flipkart", Location: "Bangalore, Karnataka", Experience: "8 years", Rating: 4.9, Sessions: 120, Expertise: []string{"Machine Learning", "Python", "Data Analysis", "Career Growth"}, Availability: "Weekends", MatchScore: 96, Bio: "Passionate about helping aspiring data scientists break into the field. Former mentor at IIT Bangalore and startup incubators."},
	{ID: "2", Name: "Arjun Mehta", Role: "Product Manager", Company: "Razorpay", Location: "Bangalore, Karnataka", Experience: "6 years", Rating: 4.8, Sessions: 95, Expertise: []string{"Product Strategy", "Leadership", "Agile", "User Research"}, Availability: "Evenings", MatchScore: 92, Bio: "Helping students transition from technical roles to product management. Led fintech products serving 5M+ merchants."},
	{ID: "3", Name: "Ananya Singh", Role: "UX Design Lead", Company: "Swiggy", Location: "Hyderabad, Telangana", Experience: "7 years", Rating: 4.9, Sessions: 110, Expertise: []string{"UX Design", "Design Systems", "User Research", "Figma"}, Availability: "Flexible", MatchScore: 88, Bio: "Award-winning designer passionate about mentoring the next generation of UX professionals in Indian tech."},
	{ID: "4", Name: "Rahul Kumar", Role: "Engineering Manager", Company: "Paytm", Location: "Noida, UP", Experience: "10 years", Rating: 4.7, Sessions: 140, Expertise: []string{"Software Engineering", "System Design", "Team Leadership", "Cloud"}, Availability: "Weekdays", MatchScore: 90, Bio: "Leading teams of 20+ engineers. Focused on helping junior developers advance their careers in Indian tech ecosystem."},
	{ID: "5", Name: "Sneha Patel", Role: "Data Analytics Manager", Company: "Zomato", Location: "Gurugram, Haryana", Experience: "9 years", Rating: 4.8, Sessions: 105, Expertise: []string{"Data Analytics", "SQL", "Business Intelligence", "Mentoring"}, Availability: "Weekends", MatchScore: 94, Bio: "Specializing in helping students build data portfolios and land their first analytics role in Indian startups."},
	{ID: "6", Name: "Vikram Reddy", Role: "ML Engineer", Company: "PhonePe", Location: "Bangalore, Karnataka", Experience: "5 years", Rating: 4.9, Sessions: 80, Expertise: []string{"Machine Learning", "Deep Learning", "Python", "AI Research"}, Availability: "Evenings", MatchScore: 93, Bio: "Working on cutting-edge AI in payments. Passionate about making ML accessible to everyone in India."},
	{ID: "7", Name: "Kavya Iyer", Role: "Fashion Designer", Company: "Fabindia", Location: "Mumbai, Maharashtra", Experience: "6 years", Rating: 4.8, Sessions: 75, Expertise: []string{"Fashion Design", "Textile Design", "Brand Strategy", "Sustainability"}, Availability: "Weekends", MatchScore: 91, Bio: "Championing sustainable fashion in India. Mentoring aspiring designers on building ethical fashion brands."},
	{ID: "8", Name: "Aditya Kapoor", Role: "Senior Advocate", Company: "Supreme Court of India", Location: "New Delhi", Experience: "12 years", Rating: 4.9, Sessions: 65, Expertise: []string{"Corporate Law", "Constitutional Law", "Legal Research", "Court Practice"}, Availability: "Weekdays", MatchScore: 89, Bio: "Practicing law at the highest court. Guiding law students through career paths in litigation and corporate law."},
	{ID: "9", Name: "Dr. Meera Nair", Role: "Clinical Psychologist", Company: "NIMHANS", Location: "Bangalore, Karnataka", Experience: "11 years", Rating: 4.9, Sessions: 90, Expertise: []string{"Clinical Psychology", "Therapy", "Mental Health", "Research"}, Availability: "Flexible", MatchScore: 95, Bio: "Leading mental health professional. Helping psychology students navigate clinical practice and research careers."},
	{ID: "10", Name: "Prof. Rajesh Gupta", Role: "Professor of Sociology", Company: "JNU", Location: "New Delhi", Experience: "15 years", Rating: 4.8, Sessions: 85, Expertise: []string{"Social Research", "Academia", "Policy Analysis", "Publishing"}, Availability: "Weekends", MatchScore: 87, Bio: "Published researcher and educator. Mentoring students in humanities and social sciences research careers."},
}

// Mentors returns the mentor directory with nobody connected.
func Mentors() []types.Mentor {
	out := make([]types.Mentor, len(mentors))
	for i, m := range mentors {
		m.Expertise = append([]string(nil), m.Expertise...)
		out[i] = m
	}
	return out
}
