// Package jobs serves the public job board catalog with its filter panel
// and the employer's job posting wizard.
package jobs

import "time"

// Job is a listing on the public board. SalaryRange uses the
// "₹min-max LPA" form and PostedAt a relative "N days ago" label.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	SalaryRange string   `json:"salaryRange"`
	JobType     string   `json:"jobType"`
	PostedAt    string   `json:"postedAt"`
	Description string   `json:"description"`
	IsNew       bool     `json:"isNew,omitempty"`
	Skills      []string `json:"skills"`
}

// Catalog returns the board's listings in display order.
func Catalog() []Job {
	return []Job{
		{
			ID: "1", Title: "Senior Software Engineer", Company: "TCS", Location: "Bangalore, Karnataka",
			SalaryRange: "₹20-30 LPA", JobType: "Full-time", PostedAt: "2 days ago", IsNew: true,
			Description: "We are looking for a Senior Software Engineer with 5+ years of experience in React, Node.js, and AWS. The ideal candidate will lead development efforts for our flagship product.",
			Skills:      []string{"React", "Node.js", "AWS", "TypeScript"},
		},
		{
			ID: "2", Title: "Product Manager", Company: "Flipkart", Location: "Bangalore, Karnataka",
			SalaryRange: "₹25-35 LPA", JobType: "Full-time", PostedAt: "1 week ago",
			Description: "As a Product Manager at Flipkart, you will be responsible for driving product strategy and execution for our mobile app. You will work closely with engineering, design, and marketing teams.",
			Skills:      []string{"Product Strategy", "Agile", "Analytics", "UX"},
		},
		{
			ID: "3", Title: "Data Scientist", Company: "Myntra", Location: "Bangalore, Karnataka",
			SalaryRange: "₹18-28 LPA", JobType: "Full-time", PostedAt: "3 days ago", IsNew: true,
			Description: "Looking for a Data Scientist to design and implement ML models for our recommendation engine. Experience with Python, TensorFlow, and recommendation systems is required.",
			Skills:      []string{"Python", "Machine Learning", "TensorFlow", "SQL"},
		},
		{
			ID: "4", Title: "UI/UX Designer", Company: "Swiggy", Location: "Bangalore, Karnataka",
			SalaryRange: "₹15-25 LPA", JobType: "Full-time", PostedAt: "5 days ago",
			Description: "We are seeking a talented UI/UX Designer to create amazing user experiences for our app. You will work on designing user flows, wireframes, and high-fidelity mockups.",
			Skills:      []string{"Figma", "User Research", "Prototyping", "Visual Design"},
		},
		{
			ID: "5", Title: "Frontend Developer", Company: "BYJU'S", Location: "Bangalore, Karnataka",
			SalaryRange: "₹12-18 LPA", JobType: "Full-time", PostedAt: "1 week ago",
			Description: "Join our team as a Frontend Developer to build responsive and interactive web applications. Strong knowledge of React, Redux, and modern JavaScript is required.",
			Skills:      []string{"React", "Redux", "JavaScript", "CSS3"},
		},
		{
			ID: "6", Title: "DevOps Engineer", Company: "Ola", Location: "Bangalore, Karnataka",
			SalaryRange: "₹18-28 LPA", JobType: "Full-time", PostedAt: "2 weeks ago",
			Description: "We are looking for a DevOps Engineer to help us build and maintain our cloud infrastructure. Experience with AWS, Docker, Kubernetes, and CI/CD pipelines is required.",
			Skills:      []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
		},
		{
			ID: "7", Title: "Backend Engineer", Company: "Paytm", Location: "Noida, Uttar Pradesh",
			SalaryRange: "₹15-25 LPA", JobType: "Full-time", PostedAt: "1 week ago",
			Description: "Join our engineering team to build scalable backend services for our payment platform. Experience with Java, Spring Boot, and microservices architecture is required.",
			Skills:      []string{"Java", "Spring Boot", "Microservices", "SQL"},
		},
		{
			ID: "8", Title: "Marketing Manager", Company: "Amazon", Location: "Hyderabad, Telangana",
			SalaryRange: "₹20-30 LPA", JobType: "Full-time", PostedAt: "3 days ago", IsNew: true,
			Description: "We are seeking a Marketing Manager to develop and execute marketing strategies for our consumer products. Experience in digital marketing and brand management is required.",
			Skills:      []string{"Digital Marketing", "Brand Management", "Analytics", "Campaign Planning"},
		},
	}
}

// Draft is the posting wizard's form.
type Draft struct {
	Title          string `json:"title"`
	Department     string `json:"department"`
	CompanyName    string `json:"companyName"`
	Location       string `json:"location"`
	JobType        string `json:"jobType"`
	SalaryRange    string `json:"salaryRange"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Qualifications string `json:"qualifications"`
}

const (
	DefaultJobType = "Full-time"
	PostingActive  = "Active"
)

// Posting is a job published by an employer.
type Posting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	CompanyName    string    `json:"companyName"`
	Location       string    `json:"location"`
	JobType        string    `json:"jobType"`
	SalaryRange    string    `json:"salaryRange"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Qualifications []string  `json:"qualifications"`
	Applicants     int       `json:"applicants"`
	Status         string    `json:"status"`
	PostedDate     time.Time `json:"postedDate"`
}
