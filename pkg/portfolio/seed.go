package portfolio

import "portfolio-core/pkg/models"

// DefaultData is the dataset each repository seeds itself from when no
// persisted collection exists yet. It is the seam through which a different
// default dataset can be plugged in.
func DefaultData() models.PortfolioData {
	return models.PortfolioData{
		PersonalInfo: models.PersonalInfo{
			Name:    "Al Mamun Sikder",
			Title:   "Full Stack Developer",
			Tagline: "Building modern web experiences",
			Avatar:  "https://i.pravatar.cc/300",
			Bio:     "Passionate Full Stack Developer with expertise in modern web technologies. I create efficient, scalable, and user-friendly applications that solve real-world problems.",
			ContactInfo: models.ContactInfo{
				Email:            "aalmamunsikder@gmail.com",
				Location:         "Dhaka, Bangladesh",
				AvailableForWork: true,
			},
			SocialLinks: []models.SocialLink{
				{ID: "sl1", Platform: "GitHub", URL: "https://github.com/aalmamunmamun", Icon: "github"},
				{ID: "sl2", Platform: "LinkedIn", URL: "https://linkedin.com/in/aalmamunmamun", Icon: "linkedin"},
				{ID: "sl3", Platform: "Twitter", URL: "https://twitter.com/almamun", Icon: "twitter"},
			},
		},
		Projects: []models.Project{
			{
				RecordID:    models.RecordID{ID: "p1"},
				Title:       "CloudPC Platform",
				Description: "A full-featured cloud pc platform with payment processing, inventory management, and analytics.",
				ImageURL:    "https://smartpc-new-ui.vercel.app/",
				Tags:        []string{"React", "Node.js", "MongoDB", "Stripe"},
				LiveURL:     "https://smartpc-new-ui.vercel.app/",
				GithubURL:   "https://github.com/aalmamunmamun/smartpc-new-ui",
				Featured:    true,
			},
			{
				RecordID:    models.RecordID{ID: "p2"},
				Title:       "SwiftPay Nexus",
				Description: "A payment gateway for mobile banking and mobile money transfer.",
				ImageURL:    "https://swiftpay-nexus.vercel.app/",
				Tags:        []string{"JavaScript", "Chart.js", "Weather API"},
				LiveURL:     "https://swiftpay-nexus.vercel.app/",
				GithubURL:   "https://github.com/aalmamunmamun/swiftpay-nexus",
				Featured:    false,
			},
			{
				RecordID:    models.RecordID{ID: "p3"},
				Title:       "Genesis NFT Gallery",
				Description: "Buy, Create & Sell Unique NFTs File.",
				ImageURL:    "https://genesis-nft-gallery.vercel.app/",
				Tags:        []string{"React", "WebRTC", "Socket.io", "AWS"},
				LiveURL:     "https://genesis-nft-gallery.vercel.app/",
				GithubURL:   "https://github.com/aalmamunmamun/genesis-nft-gallery",
				Featured:    true,
			},
		},
		Skills: []models.Skill{
			{RecordID: models.RecordID{ID: "s1"}, Name: "React", Icon: "react", Level: 95, Category: "Frontend"},
			{RecordID: models.RecordID{ID: "s2"}, Name: "Next.js", Icon: "nextjs", Level: 90, Category: "Frontend"},
			{RecordID: models.RecordID{ID: "s3"}, Name: "TypeScript", Icon: "typescript", Level: 90, Category: "Frontend"},
			{RecordID: models.RecordID{ID: "s4"}, Name: "Node.js", Icon: "nodejs", Level: 90, Category: "Backend"},
			{RecordID: models.RecordID{ID: "s5"}, Name: "Python", Icon: "python", Level: 80, Category: "Backend"},
			{RecordID: models.RecordID{ID: "s6"}, Name: "Docker", Icon: "docker", Level: 80, Category: "DevOps"},
			{RecordID: models.RecordID{ID: "s7"}, Name: "AWS", Icon: "aws", Level: 75, Category: "DevOps"},
			{RecordID: models.RecordID{ID: "s8"}, Name: "Figma", Icon: "figma", Level: 85, Category: "Design"},
		},
		Experiences: []models.Experience{
			{
				RecordID:     models.RecordID{ID: "e1"},
				JobTitle:     "Senior Frontend Developer",
				Company:      "Tech Innovations Inc.",
				Location:     "San Francisco, CA",
				StartDate:    "2021-03-01",
				EndDate:      "2023-08-15",
				Description:  "Led the frontend development team in designing and implementing user interfaces for enterprise applications. Improved performance by 40% and introduced component-based architecture.",
				Technologies: []string{"React", "TypeScript", "Redux", "Material UI"},
			},
			{
				RecordID:     models.RecordID{ID: "e2"},
				JobTitle:     "Full Stack Developer",
				Company:      "Digital Solutions",
				Location:     "Austin, TX",
				StartDate:    "2018-06-01",
				EndDate:      "2021-02-28",
				Description:  "Developed and maintained multiple web applications for clients in various industries. Worked on both frontend and backend components of applications.",
				Technologies: []string{"JavaScript", "Node.js", "Express", "MongoDB", "React"},
			},
		},
		Education: []models.Education{
			{
				RecordID:     models.RecordID{ID: "ed1"},
				Institution:  "University of California, Berkeley",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2012-09-01",
				EndDate:      "2016-05-30",
				Location:     "Berkeley, CA",
				Description:  "Studied computer science with a focus on software engineering and web development. Participated in multiple hackathons and coding competitions.",
				Achievements: []string{
					"Dean's List 2013-2016",
					"1st place in University Hackathon 2015",
				},
			},
			{
				RecordID:     models.RecordID{ID: "ed2"},
				Institution:  "Coding Bootcamp",
				Degree:       "Certificate",
				FieldOfStudy: "Full Stack Web Development",
				StartDate:    "2016-06-01",
				EndDate:      "2016-08-30",
				Location:     "San Francisco, CA",
				Description:  "Intensive 12-week program covering modern web development technologies and best practices.",
				Achievements: []string{"Recognized for Best UI/UX Design"},
			},
		},
	}
}
