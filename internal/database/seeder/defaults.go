package seeder

type seedJob struct {
	Title               string
	Location            string
	Description         string
	MinExperience       int
	MaxExperience       int
	MinSalary           float64
	MaxSalary           float64
	JobType             string
	WorkMode            string
	Status              string
	ApplicationDeadline string
}

type seedCompany struct {
	Name    string
	LogoURL string
	Jobs    []seedJob
}

var demoCompanies = []seedCompany{
	{
		Name:    "Amazon",
		LogoURL: "https://spotfluencerbucket.s3.ap-south-1.amazonaws.com/profile-pictures/amazon.png",
		Jobs: []seedJob{
			{
				Title:               "Full Stack Developer",
				Location:            "Bangalore",
				Description:         "Join our team to build scalable web applications using React and Node.js. Experience with AWS services and microservices architecture is a plus.",
				MinExperience:       1,
				MaxExperience:       3,
				MinSalary:           800000,
				MaxSalary:           1200000,
				JobType:             "FULL_TIME",
				WorkMode:            "ONSITE",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-01-15",
			},
			{
				Title:               "DevOps Engineer",
				Location:            "Bangalore",
				Description:         "Looking for an experienced DevOps engineer to help us scale our infrastructure. Knowledge of AWS, Kubernetes, and CI/CD pipelines required.",
				MinExperience:       3,
				MaxExperience:       6,
				MinSalary:           2000000,
				MaxSalary:           3500000,
				JobType:             "FULL_TIME",
				WorkMode:            "HYBRID",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-02-01",
			},
		},
	},
	{
		Name:    "Tesla",
		LogoURL: "https://spotfluencerbucket.s3.ap-south-1.amazonaws.com/profile-pictures/tesla.png",
		Jobs: []seedJob{
			{
				Title:               "Frontend Developer",
				Location:            "Hyderabad",
				Description:         "Join our Azure team to build modern web interfaces. Strong experience with React, TypeScript, and modern frontend practices required. You will work on creating intuitive user experiences for cloud services.",
				MinExperience:       2,
				MaxExperience:       5,
				MinSalary:           1800000,
				MaxSalary:           3000000,
				JobType:             "FULL_TIME",
				WorkMode:            "ONSITE",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-01-30",
			},
			{
				Title:               "Backend Developer",
				Location:            "Chennai",
				Description:         "Build high-performance microservices for our food delivery platform. Experience with Node.js, PostgreSQL, and Redis required. You will work on systems that handle millions of orders daily.",
				MinExperience:       3,
				MaxExperience:       6,
				MinSalary:           1800000,
				MaxSalary:           3200000,
				JobType:             "FULL_TIME",
				WorkMode:            "REMOTE",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-01-20",
			},
		},
	},
	{
		Name:    "Swiggy",
		LogoURL: "https://spotfluencerbucket.s3.ap-south-1.amazonaws.com/profile-pictures/swiggy.png",
		Jobs: []seedJob{
			{
				Title:               "Machine Learning Engineer",
				Location:            "Bangalore",
				Description:         "Work on cutting-edge AI/ML projects. Experience with TensorFlow, PyTorch, and large-scale machine learning systems required. You will develop and deploy ML models that impact billions of users.",
				MinExperience:       4,
				MaxExperience:       8,
				MinSalary:           3000000,
				MaxSalary:           5500000,
				JobType:             "FULL_TIME",
				WorkMode:            "HYBRID",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-02-15",
			},
			{
				Title:               "Software Engineering Intern",
				Location:            "Bangalore",
				Description:         "Join our internship program to work on real-world projects. Strong CS fundamentals and coding skills required. You will collaborate with experienced engineers and learn about large-scale systems.",
				MinExperience:       0,
				MaxExperience:       1,
				MinSalary:           100000,
				MaxSalary:           150000,
				JobType:             "INTERNSHIP",
				WorkMode:            "ONSITE",
				Status:              "PUBLISHED",
				ApplicationDeadline: "2026-03-01",
			},
		},
	},
}
