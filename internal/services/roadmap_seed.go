package services

import (
	"strconv"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/path-finder-in/roadmap-service/internal/models"
)

type seedStep struct {
	title       string
	description string
	resources   []string
	duration    string
}

type seedRoadmap struct {
	title             string
	stream            models.Stream
	description       string
	estimatedDuration string
	difficulty        models.DifficultyLevel
	steps             []seedStep
}

// builtinCatalog materializes the starter catalog with fresh identifiers.
// Step ids are ordinal strings so client-side completion markers stay
// stable across reseeds of an empty database.
func builtinCatalog() []*models.Roadmap {
	roadmaps := make([]*models.Roadmap, 0, len(seedCatalog))
	for i, seed := range seedCatalog {
		steps := make([]models.Step, 0, len(seed.steps))
		for j, step := range seed.steps {
			steps = append(steps, models.Step{
				ID:          strconv.Itoa(j + 1),
				Title:       step.title,
				Description: step.description,
				Resources:   step.resources,
				Duration:    step.duration,
			})
		}
		roadmaps = append(roadmaps, &models.Roadmap{
			ID:                uuid.NewString(),
			Title:             seed.title,
			Stream:            seed.stream,
			Description:       seed.description,
			Steps:             datatypes.NewJSONSlice(steps),
			EstimatedDuration: seed.estimatedDuration,
			DifficultyLevel:   seed.difficulty,
			Position:          i,
		})
	}
	return roadmaps
}

var seedCatalog = []seedRoadmap{
	// Science stream
	{
		title:             "Full Stack Developer",
		stream:            models.StreamScience,
		description:       "Complete path to becoming a full-stack web developer with modern technologies",
		estimatedDuration: "12-18 months",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Learn HTML & CSS Basics", "Master HTML5 and CSS3 fundamentals", []string{"https://www.freecodecamp.org/", "https://developer.mozilla.org/"}, "4-6 weeks"},
			{"JavaScript Fundamentals", "Learn core JavaScript concepts", []string{"https://javascript.info/", "https://www.coursera.org/"}, "6-8 weeks"},
			{"React.js", "Build interactive user interfaces", []string{"https://reactjs.org/", "https://www.unacademy.com/"}, "8-10 weeks"},
			{"Backend with Node.js", "Server-side development", []string{"https://nodejs.org/", "https://swayam.gov.in/"}, "6-8 weeks"},
			{"Database Management", "Learn MongoDB and SQL", []string{"https://university.mongodb.com/", "https://www.coursera.org/"}, "4-6 weeks"},
			{"Build Portfolio Projects", "Create 3-5 full-stack applications", []string{"https://github.com/", "https://netlify.com/"}, "8-12 weeks"},
		},
	},
	{
		title:             "Data Scientist",
		stream:            models.StreamScience,
		description:       "Become a data scientist with Python, ML, and analytics skills",
		estimatedDuration: "15-24 months",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Python Programming", "Master Python for data science", []string{"https://www.python.org/", "https://swayam.gov.in/"}, "6-8 weeks"},
			{"Statistics & Mathematics", "Linear algebra, calculus, statistics", []string{"https://www.khanacademy.org/", "https://www.coursera.org/"}, "10-12 weeks"},
			{"Data Analysis Libraries", "Pandas, NumPy, Matplotlib", []string{"https://pandas.pydata.org/", "https://www.unacademy.com/"}, "6-8 weeks"},
			{"Machine Learning", "Scikit-learn, supervised/unsupervised learning", []string{"https://scikit-learn.org/", "https://www.coursera.org/"}, "12-16 weeks"},
			{"Deep Learning", "Neural networks, TensorFlow/PyTorch", []string{"https://www.tensorflow.org/", "https://pytorch.org/"}, "10-12 weeks"},
			{"Real Projects & Portfolio", "Build data science projects", []string{"https://kaggle.com/", "https://github.com/"}, "8-10 weeks"},
		},
	},
	{
		title:             "Doctor (MBBS)",
		stream:            models.StreamScience,
		description:       "Medical career path through NEET and MBBS program",
		estimatedDuration: "6-8 years",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Class 12 PCB", "Physics, Chemistry, Biology with 90%+", []string{"https://ncert.nic.in/", "https://www.unacademy.com/"}, "2 years"},
			{"NEET Preparation", "Qualify NEET-UG exam", []string{"https://www.nta.ac.in/", "https://www.aakash.ac.in/"}, "1-2 years"},
			{"MBBS Degree", "5.5 years medical program", []string{"https://www.mciindia.org/", "Medical Colleges"}, "5.5 years"},
			{"Internship", "1 year mandatory internship", []string{"Teaching Hospitals", "Medical Institutions"}, "1 year"},
			{"Medical Registration", "Register with Medical Council", []string{"https://www.nmc.org.in/"}, "3-6 months"},
			{"Specialization (Optional)", "MD/MS through NEET-PG", []string{"https://www.nta.ac.in/", "Post Graduate Medical Colleges"}, "3 years"},
		},
	},
	{
		title:             "Engineer",
		stream:            models.StreamScience,
		description:       "Engineering career through JEE and B.Tech program",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Class 12 PCM", "Physics, Chemistry, Mathematics", []string{"https://ncert.nic.in/", "https://www.unacademy.com/"}, "2 years"},
			{"JEE Preparation", "JEE Main & Advanced preparation", []string{"https://www.nta.ac.in/", "https://www.fiitjee.com/"}, "1-2 years"},
			{"B.Tech Degree", "4-year engineering program", []string{"IITs", "NITs", "Engineering Colleges"}, "4 years"},
			{"Internships & Projects", "Gain practical experience", []string{"Industry Partners", "Research Labs"}, "During B.Tech"},
			{"Technical Skills", "Programming, design, analysis", []string{"https://www.coursera.org/", "https://swayam.gov.in/"}, "Continuous"},
			{"Job/Higher Studies", "Placement or M.Tech/MS", []string{"Campus Placements", "Gate Preparation"}, "Final Year"},
		},
	},
	{
		title:             "Biotechnologist",
		stream:            models.StreamScience,
		description:       "Career in biotechnology and life sciences",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Class 12 PCB/PCM", "Biology focus with chemistry", []string{"https://ncert.nic.in/", "https://www.unacademy.com/"}, "2 years"},
			{"Entrance Exams", "JEE Main, BITSAT, or university exams", []string{"https://www.nta.ac.in/", "University Websites"}, "1 year"},
			{"B.Tech/B.Sc Biotechnology", "Undergraduate degree in biotechnology", []string{"IITs", "NITs", "Biotechnology Colleges"}, "4 years"},
			{"Laboratory Skills", "Practical lab techniques", []string{"College Labs", "Industry Training"}, "During Degree"},
			{"Research Projects", "Undergraduate research experience", []string{"Research Institutes", "CSIR Labs"}, "1-2 years"},
			{"Specialization/Job", "M.Tech or industry position", []string{"GATE", "Campus Placements"}, "2+ years"},
		},
	},

	// Commerce stream
	{
		title:             "Chartered Accountant",
		stream:            models.StreamCommerce,
		description:       "Professional CA qualification through ICAI",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Class 12 Commerce", "Accountancy, Business Studies, Economics", []string{"https://ncert.nic.in/", "https://www.unacademy.com/"}, "2 years"},
			{"CA Foundation", "Entry level CA examination", []string{"https://www.icai.org/", "CA Coaching Institutes"}, "6-12 months"},
			{"CA Intermediate", "Middle level CA examination", []string{"https://www.icai.org/", "Self Study + Coaching"}, "12-18 months"},
			{"Articleship Training", "3 years practical training", []string{"CA Firms", "Corporate Houses"}, "3 years"},
			{"CA Final", "Final level CA examination", []string{"https://www.icai.org/", "Advanced Study"}, "6-18 months"},
			{"Membership & Practice", "ICAI membership and career start", []string{"https://www.icai.org/", "CA Firms"}, "Ongoing"},
		},
	},
	{
		title:             "Investment Banker",
		stream:            models.StreamCommerce,
		description:       "Career in investment banking and finance",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Bachelor's Degree", "B.Com, BBA, or Economics", []string{"Commerce Colleges", "Universities"}, "3 years"},
			{"Financial Knowledge", "Learn markets, valuation, modeling", []string{"https://www.coursera.org/", "https://www.cfainstitute.org/"}, "1-2 years"},
			{"MBA/Finance Specialization", "Master's in Finance/MBA", []string{"IIMs", "Top B-Schools"}, "2 years"},
			{"Internships", "Investment banking internships", []string{"Goldman Sachs", "Morgan Stanley", "Local Banks"}, "Summer Terms"},
			{"Certifications", "CFA, FRM certifications", []string{"https://www.cfainstitute.org/", "https://www.garp.org/"}, "1-3 years"},
			{"Full-time Position", "Analyst/Associate role", []string{"Investment Banks", "Financial Services"}, "Career Start"},
		},
	},
	{
		title:             "Business Analyst",
		stream:            models.StreamCommerce,
		description:       "Business analysis and consulting career",
		estimatedDuration: "3-5 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Bachelor's Degree", "BBA, B.Com, or related field", []string{"Business Schools", "Universities"}, "3 years"},
			{"Business Analysis Skills", "Process mapping, requirements analysis", []string{"https://www.coursera.org/", "https://www.iiba.org/"}, "6-12 months"},
			{"Technical Skills", "SQL, Excel, Data Analysis tools", []string{"https://www.microsoft.com/", "https://www.tableau.com/"}, "3-6 months"},
			{"Industry Experience", "Internships and entry-level roles", []string{"Consulting Firms", "Corporations"}, "1-2 years"},
			{"Certifications", "CBAP, PMI-PBA certifications", []string{"https://www.iiba.org/", "https://www.pmi.org/"}, "6-12 months"},
			{"Senior Roles", "Senior BA or consultancy positions", []string{"Career Progression", "Networking"}, "Ongoing"},
		},
	},
	{
		title:             "Marketing Manager",
		stream:            models.StreamCommerce,
		description:       "Digital and traditional marketing career path",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Bachelor's Degree", "Marketing, BBA, Mass Communication", []string{"Business Schools", "Universities"}, "3 years"},
			{"Digital Marketing Skills", "SEO, SEM, Social Media Marketing", []string{"https://www.google.com/skillshop/", "https://www.hubspot.com/"}, "3-6 months"},
			{"Marketing Analytics", "Google Analytics, Marketing metrics", []string{"https://analytics.google.com/", "https://www.coursera.org/"}, "2-4 months"},
			{"Industry Experience", "Marketing executive/coordinator roles", []string{"Marketing Agencies", "Corporate Marketing"}, "2-3 years"},
			{"Specialization", "Brand, Digital, or Product Marketing", []string{"https://www.unacademy.com/", "Professional Courses"}, "1-2 years"},
			{"Leadership Role", "Marketing Manager position", []string{"Career Growth", "MBA Optional"}, "Ongoing"},
		},
	},
	{
		title:             "Entrepreneur",
		stream:            models.StreamCommerce,
		description:       "Start and scale your own business",
		estimatedDuration: "Varies (3+ years)",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Business Education", "BBA, B.Com or relevant field", []string{"Business Schools", "Online Courses"}, "3 years"},
			{"Idea Development", "Identify market opportunity", []string{"https://www.startupindia.gov.in/", "Market Research"}, "3-6 months"},
			{"Business Plan", "Create comprehensive business plan", []string{"https://www.score.org/", "Business Plan Tools"}, "2-4 months"},
			{"Funding & Setup", "Secure funding and legal setup", []string{"Angel Investors", "https://www.startupindia.gov.in/"}, "3-12 months"},
			{"Launch & Operations", "Launch product/service and operations", []string{"Incubators", "Mentorship Programs"}, "6-18 months"},
			{"Scale & Growth", "Expand business and scale operations", []string{"Business Networks", "Growth Strategies"}, "Ongoing"},
		},
	},

	// Arts stream
	{
		title:             "Teacher",
		stream:            models.StreamArts,
		description:       "Teaching career in schools and higher education",
		estimatedDuration: "4-6 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Bachelor's Degree", "BA in subject of interest", []string{"Universities", "Arts Colleges"}, "3 years"},
			{"B.Ed Degree", "Bachelor of Education", []string{"Education Colleges", "Universities"}, "2 years"},
			{"Teaching Practice", "Student teaching and practice", []string{"Practice Schools", "Internship Programs"}, "During B.Ed"},
			{"Qualification Exams", "CTET, TET, or state exams", []string{"https://ctet.nic.in/", "State Education Boards"}, "6 months"},
			{"Teaching Position", "School or college appointment", []string{"Government Schools", "Private Schools"}, "Career Start"},
			{"Professional Development", "M.Ed, research, or administration", []string{"Universities", "Professional Courses"}, "Ongoing"},
		},
	},
	{
		title:             "Designer",
		stream:            models.StreamArts,
		description:       "Graphic, UI/UX, or product design career",
		estimatedDuration: "3-5 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Foundation Skills", "Art, drawing, design fundamentals", []string{"Art Schools", "https://www.skillshare.com/"}, "6-12 months"},
			{"Design Software", "Adobe Creative Suite, Figma", []string{"https://www.adobe.com/", "https://www.figma.com/"}, "3-6 months"},
			{"Formal Education", "B.Des, Diploma in Design", []string{"NIFT", "Design Colleges"}, "3-4 years"},
			{"Portfolio Development", "Build strong design portfolio", []string{"https://www.behance.net/", "https://dribbble.com/"}, "Ongoing"},
			{"Specialization", "Choose UI/UX, Graphic, Product Design", []string{"https://www.coursera.org/", "https://www.unacademy.com/"}, "6-12 months"},
			{"Professional Work", "Design studio or freelance career", []string{"Design Agencies", "Freelance Platforms"}, "Career Start"},
		},
	},
	{
		title:             "Journalist",
		stream:            models.StreamArts,
		description:       "Media and journalism career path",
		estimatedDuration: "3-4 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Bachelor's Degree", "Journalism, Mass Communication, English", []string{"Journalism Schools", "Universities"}, "3 years"},
			{"Writing Skills", "News writing, reporting, editing", []string{"https://www.coursera.org/", "Writing Workshops"}, "6-12 months"},
			{"Media Training", "Video, audio, digital media skills", []string{"Media Training Institutes", "Online Courses"}, "3-6 months"},
			{"Internships", "Newspaper, TV, online media internships", []string{"Media Houses", "News Organizations"}, "6-12 months"},
			{"Beat Specialization", "Politics, Sports, Entertainment, etc.", []string{"Professional Experience", "Networking"}, "1-2 years"},
			{"Career Growth", "Reporter, Editor, or Media Entrepreneur", []string{"Media Organizations", "Independent Media"}, "Ongoing"},
		},
	},
	{
		title:             "Psychologist",
		stream:            models.StreamArts,
		description:       "Psychology and counseling career",
		estimatedDuration: "5-7 years",
		difficulty:        models.DifficultyAdvanced,
		steps: []seedStep{
			{"Bachelor's in Psychology", "BA/B.Sc Psychology", []string{"Psychology Departments", "Universities"}, "3 years"},
			{"Master's Degree", "MA/M.Sc in Psychology", []string{"Psychology Colleges", "Universities"}, "2 years"},
			{"Specialization", "Clinical, Counseling, Organizational", []string{"Specialization Courses", "Professional Training"}, "1-2 years"},
			{"Practical Training", "Internships, supervised practice", []string{"Hospitals", "Clinics", "Counseling Centers"}, "1 year"},
			{"Licensing", "Professional registration and certification", []string{"Psychology Councils", "Professional Bodies"}, "3-6 months"},
			{"Practice Setup", "Private practice or institutional work", []string{"Healthcare Institutions", "Private Practice"}, "Career Start"},
		},
	},
	{
		title:             "Writer",
		stream:            models.StreamArts,
		description:       "Creative and content writing career",
		estimatedDuration: "2-4 years",
		difficulty:        models.DifficultyIntermediate,
		steps: []seedStep{
			{"Language Skills", "Master language and grammar", []string{"Literature Courses", "Language Schools"}, "Ongoing"},
			{"Writing Practice", "Daily writing, different formats", []string{"Writing Communities", "https://www.wattpad.com/"}, "6-12 months"},
			{"Education", "English, Literature, or Journalism", []string{"Universities", "Literature Departments"}, "3 years"},
			{"Portfolio Building", "Published works, blog, articles", []string{"https://medium.com/", "Literary Magazines"}, "1-2 years"},
			{"Specialization", "Content, Creative, Technical Writing", []string{"https://www.coursera.org/", "Writing Courses"}, "6-12 months"},
			{"Professional Career", "Publisher, freelance, or content creator", []string{"Publishing Houses", "Content Agencies"}, "Career Start"},
		},
	},
}
