package resume

import "context"

// Slugs of the built-in experience entries.
const (
	SlugCuraPatient = "curapatient"
	SlugPiPay       = "pipay"
	SlugAgribuddy   = "agribuddy"
	SlugTrueMoney   = "truemoney"
)

type builtinSource struct{}

// NewBuiltinSource serves the compiled-in record.
func NewBuiltinSource() Source {
	return builtinSource{}
}

func (builtinSource) Load(context.Context) (*Record, error) {
	return validated(Builtin())
}

func validated(rec *Record) (*Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Builtin returns a fresh copy of the owner's résumé.
func Builtin() *Record {
	return &Record{
		Name:     "Taingy Srun",
		Email:    "taingy.srun23@gmail.com",
		Phone:    "(949) 969-7793",
		Location: "Irvine, CA",
		LinkedIn: "https://www.linkedin.com/in/taingy-srun",
		GitHub:   "https://github.com/taingy-srun",
		Summary: "Software Engineer with 5+ years of experience designing, developing, and delivering scalable web and mobile " +
			"applications across healthcare, fintech, and agri-tech industries. Skilled in full-stack development using " +
			"Java Spring Boot, Angular, Kotlin, SQL, and Git.",
		Education: []string{
			"Master of Science in Computer Science | Maharishi International University, Fairfield, IA, 2025",
			"Bachelor of Science in Information Technology | Build Bright University, Phnom Penh, Cambodia, 2018",
		},
		Skills: []SkillCategory{
			{Key: "languages", Label: "Languages", Items: []string{"Java", "Kotlin", "JavaScript", "TypeScript", "Python"}},
			{Key: "frameworks", Label: "Frameworks", Items: []string{"Spring Boot", "Spring MVC", "Spring Data", "JUnit", "Angular", "HTML", "CSS"}},
			{Key: "backend", Label: "Backend", Items: []string{"RESTful APIs", "SOAP", "Microservices", "Kafka", "Hibernate", "JPA", "Swagger"}},
			{Key: "databases", Label: "Databases", Items: []string{"PostgreSQL", "MySQL", "MongoDB"}},
			{Key: "cloud", Label: "Cloud & Tools", Items: []string{"AWS (S3, Lambda, RDS, Glue, Step Functions)", "Maven", "Gradle", "Git"}},
			{Key: "practices", Label: "Practices", Items: []string{"Object Oriented Programming (OOP)", "OOAD", "Agile", "Scrum", "TDD", "Code Reviews", "AI-Driven Development"}},
		},
		Experience: []Experience{
			{
				Slug:     SlugCuraPatient,
				Title:    "Software Engineer",
				Company:  "CuraPatient Inc.",
				Location: "Irvine, CA",
				Period:   "04/2024 – 08/2025",
				Highlights: []string{
					"Developed full-stack healthcare web applications using Java Spring Boot and Angular",
					"Designed ETL data pipeline using AWS S3, Glue, Lambda, and Step Functions processing 500M+ records",
					"Built end-to-end Visit functionality improving weekly visit retention by 15%",
					"Integrated AI-powered development tools reducing feature development time by 30%",
					"Achieved 85%+ test coverage with JUnit and Mockito",
				},
			},
			{
				Slug:     SlugPiPay,
				Title:    "Software Developer",
				Company:  "Pi Pay",
				Location: "Cambodia",
				Period:   "11/2020 – 12/2022",
				Highlights: []string{
					"Built APIs for biller onboarding reducing manual operations by 70%",
					"Created Phone Top-Up API handling 3,000+ daily transactions per partner",
					"Implemented KHQR functionality for seamless payments",
					"Developed Bill Payment functionality improving customer retention by 10%",
				},
			},
			{
				Slug:     SlugAgribuddy,
				Title:    "Android Developer",
				Company:  "Agribuddy",
				Location: "Cambodia",
				Period:   "06/2019 – 10/2020",
				Highlights: []string{
					"Developed Check-Attendance functionality achieving 100% company adoption",
					"Implemented offline report storage reducing data loss by 50%",
					"Trained teams improving workflow efficiency by 25%",
				},
			},
			{
				Slug:     SlugTrueMoney,
				Title:    "Android Developer",
				Company:  "TrueMoney",
				Location: "Cambodia",
				Period:   "09/2018 – 06/2019",
				Highlights: []string{
					"Integrated Bluetooth printing reducing operational costs by 15%",
					"Enhanced UI increasing user satisfaction by 20%",
					"Reduced security vulnerabilities by 20% using SonarQube",
				},
			},
		},
	}
}
