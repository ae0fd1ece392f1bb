package catalog

import (
	"time"

	"github.com/learnhub/learnhub/internal/app/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// fixtureCourses is the bundled course dataset served by the static source.
var fixtureCourses = []models.Course{
	{
		ID:              1,
		Title:           "Web Development Fundamentals",
		Slug:            "web-development-fundamentals",
		Description:     "Learn the core concepts of HTML, CSS, and JavaScript to build modern websites.",
		LongDescription: "This comprehensive course covers everything you need to know to start building modern websites. You'll learn HTML5, CSS3, and JavaScript from the ground up, with practical projects and real-world examples. By the end of this course, you'll be able to create responsive websites that work across all devices.",
		Instructor:      "Sarah Johnson",
		Rating:          4.8,
		Reviews:         842,
		Students:        1245,
		Duration:        "12 hours",
		Lessons:         24,
		Level:           models.LevelBeginner,
		Category:        "Development",
		Tags:            []string{"HTML", "CSS", "JavaScript", "Web Development"},
		Price:           49.99,
		IsFeatured:      true,
		UpdatedAt:       day(2023, time.September, 15),
	},
	{
		ID:              2,
		Title:           "Data Science Essentials",
		Slug:            "data-science-essentials",
		Description:     "Master the fundamentals of data analysis, visualization, and machine learning.",
		LongDescription: "Dive into the world of data science with this comprehensive course. You'll learn how to collect, clean, and analyze data, create compelling visualizations, and build machine learning models. This course covers Python, pandas, NumPy, Matplotlib, and scikit-learn.",
		Instructor:      "Michael Chen",
		Rating:          4.9,
		Reviews:         675,
		Students:        982,
		Duration:        "15 hours",
		Lessons:         30,
		Level:           models.LevelIntermediate,
		Category:        "Data Science",
		Tags:            []string{"Python", "Data Analysis", "Machine Learning", "Statistics"},
		Price:           59.99,
		IsFeatured:      true,
		UpdatedAt:       day(2023, time.October, 20),
	},
	{
		ID:              3,
		Title:           "UX/UI Design Principles",
		Slug:            "ux-ui-design-principles",
		Description:     "Create beautiful, user-friendly interfaces with modern design principles.",
		LongDescription: "Learn the principles of user experience and user interface design. This course covers the entire design process from research and wireframing to prototyping and testing. You'll master tools like Figma and learn how to create designs that users love.",
		Instructor:      "Emma Rodriguez",
		Rating:          4.7,
		Reviews:         523,
		Students:        756,
		Duration:        "10 hours",
		Lessons:         20,
		Level:           models.LevelBeginner,
		Category:        "Design",
		Tags:            []string{"UI", "UX", "Figma", "Design Thinking"},
		Price:           49.99,
		IsFeatured:      true,
		UpdatedAt:       day(2023, time.August, 5),
	},
	{
		ID:              4,
		Title:           "Advanced React Development",
		Slug:            "advanced-react-development",
		Description:     "Take your React skills to the next level with advanced patterns and techniques.",
		LongDescription: "This advanced course is designed for developers who already know the basics of React and want to master advanced concepts. You'll learn about React hooks, context API, Redux, performance optimization, and more. By the end of this course, you'll be able to build complex, scalable React applications.",
		Instructor:      "David Kim",
		Rating:          4.9,
		Reviews:         412,
		Students:        645,
		Duration:        "14 hours",
		Lessons:         28,
		Level:           models.LevelAdvanced,
		Category:        "Development",
		Tags:            []string{"React", "JavaScript", "Redux", "Web Development"},
		Price:           69.99,
		IsNew:           true,
		UpdatedAt:       day(2023, time.November, 10),
	},
	{
		ID:              5,
		Title:           "Digital Marketing Masterclass",
		Slug:            "digital-marketing-masterclass",
		Description:     "Learn how to create and execute effective digital marketing campaigns.",
		LongDescription: "This comprehensive digital marketing course covers all aspects of online marketing, including SEO, social media, email marketing, content marketing, and paid advertising. You'll learn how to create a digital marketing strategy, measure results, and optimize your campaigns for maximum ROI.",
		Instructor:      "Jessica Martinez",
		Rating:          4.6,
		Reviews:         378,
		Students:        892,
		Duration:        "16 hours",
		Lessons:         32,
		Level:           models.LevelIntermediate,
		Category:        "Marketing",
		Tags:            []string{"Digital Marketing", "SEO", "Social Media", "Content Marketing"},
		Price:           54.99,
		UpdatedAt:       day(2023, time.July, 25),
	},
	{
		ID:              6,
		Title:           "Python for Data Analysis",
		Slug:            "python-for-data-analysis",
		Description:     "Master Python libraries like Pandas, NumPy, and Matplotlib for data analysis.",
		LongDescription: "This course focuses on using Python for data analysis. You'll learn how to use pandas for data manipulation, NumPy for numerical computing, and Matplotlib and Seaborn for data visualization. Through hands-on projects, you'll gain practical experience analyzing real-world datasets.",
		Instructor:      "Robert Chen",
		Rating:          4.8,
		Reviews:         456,
		Students:        723,
		Duration:        "12 hours",
		Lessons:         24,
		Level:           models.LevelIntermediate,
		Category:        "Data Science",
		Tags:            []string{"Python", "Pandas", "NumPy", "Data Analysis"},
		Price:           49.99,
		IsNew:           true,
		UpdatedAt:       day(2023, time.October, 5),
	},
	{
		ID:              7,
		Title:           "Graphic Design Fundamentals",
		Slug:            "graphic-design-fundamentals",
		Description:     "Learn the principles of graphic design and how to use industry-standard tools.",
		LongDescription: "This course covers the fundamental principles of graphic design, including typography, color theory, composition, and visual hierarchy. You'll learn how to use Adobe Photoshop and Illustrator to create professional designs for print and digital media.",
		Instructor:      "Sophia Lee",
		Rating:          4.7,
		Reviews:         389,
		Students:        612,
		Duration:        "10 hours",
		Lessons:         20,
		Level:           models.LevelBeginner,
		Category:        "Design",
		Tags:            []string{"Graphic Design", "Photoshop", "Illustrator", "Typography"},
		Price:           44.99,
		UpdatedAt:       day(2023, time.June, 15),
	},
	{
		ID:              8,
		Title:           "Business Strategy and Management",
		Slug:            "business-strategy-management",
		Description:     "Develop strategic thinking and management skills for business success.",
		LongDescription: "This course teaches you how to develop and implement effective business strategies. You'll learn about strategic planning, competitive analysis, organizational management, and leadership. Through case studies and practical exercises, you'll develop the skills needed to lead successful businesses.",
		Instructor:      "James Wilson",
		Rating:          4.6,
		Reviews:         312,
		Students:        542,
		Duration:        "14 hours",
		Lessons:         28,
		Level:           models.LevelIntermediate,
		Category:        "Business",
		Tags:            []string{"Business Strategy", "Management", "Leadership", "Strategic Planning"},
		Price:           59.99,
		UpdatedAt:       day(2023, time.September, 1),
	},
	{
		ID:              9,
		Title:           "Mobile App Development with React Native",
		Slug:            "mobile-app-development-react-native",
		Description:     "Build cross-platform mobile apps for iOS and Android using React Native.",
		LongDescription: "Learn how to build mobile applications that work on both iOS and Android using React Native. This course covers the fundamentals of React Native, including components, navigation, state management, and accessing device features. By the end, you'll be able to build and deploy your own mobile apps.",
		Instructor:      "Alex Johnson",
		Rating:          4.8,
		Reviews:         287,
		Students:        498,
		Duration:        "16 hours",
		Lessons:         32,
		Level:           models.LevelIntermediate,
		Category:        "Development",
		Tags:            []string{"React Native", "Mobile Development", "JavaScript", "Cross-Platform"},
		Price:           64.99,
		IsNew:           true,
		UpdatedAt:       day(2023, time.November, 20),
	},
	{
		ID:              10,
		Title:           "Cloud Computing with AWS",
		Slug:            "cloud-computing-aws",
		Description:     "Master Amazon Web Services (AWS) and build scalable cloud applications.",
		LongDescription: "This comprehensive course on AWS cloud computing covers all the essential services, including EC2, S3, RDS, Lambda, and more. You'll learn how to architect, deploy, and scale applications in the cloud. The course includes hands-on labs and real-world projects to reinforce your learning.",
		Instructor:      "Thomas Brown",
		Rating:          4.9,
		Reviews:         342,
		Students:        587,
		Duration:        "18 hours",
		Lessons:         36,
		Level:           models.LevelAdvanced,
		Category:        "IT & Software",
		Tags:            []string{"AWS", "Cloud Computing", "DevOps", "Serverless"},
		Price:           69.99,
		UpdatedAt:       day(2023, time.October, 15),
	},
	{
		ID:              11,
		Title:           "Content Marketing Strategy",
		Slug:            "content-marketing-strategy",
		Description:     "Learn how to create and distribute valuable content to attract and engage your audience.",
		LongDescription: "This course teaches you how to develop a content marketing strategy that drives business results. You'll learn how to create compelling content, distribute it effectively, and measure its impact. Topics include content planning, creation, SEO, social media promotion, and analytics.",
		Instructor:      "Laura Smith",
		Rating:          4.7,
		Reviews:         276,
		Students:        512,
		Duration:        "10 hours",
		Lessons:         20,
		Level:           models.LevelBeginner,
		Category:        "Marketing",
		Tags:            []string{"Content Marketing", "SEO", "Social Media", "Content Strategy"},
		Price:           49.99,
		UpdatedAt:       day(2023, time.August, 20),
	},
	{
		ID:              12,
		Title:           "Machine Learning Fundamentals",
		Slug:            "machine-learning-fundamentals",
		Description:     "Learn the basics of machine learning algorithms and how to implement them in Python.",
		LongDescription: "This course provides a solid foundation in machine learning concepts and techniques. You'll learn about supervised and unsupervised learning, classification, regression, clustering, and more. Using Python and scikit-learn, you'll implement various machine learning algorithms and apply them to real-world problems.",
		Instructor:      "Daniel Lee",
		Rating:          4.8,
		Reviews:         398,
		Students:        678,
		Duration:        "14 hours",
		Lessons:         28,
		Level:           models.LevelIntermediate,
		Category:        "Data Science",
		Tags:            []string{"Machine Learning", "Python", "AI", "Data Science"},
		Price:           59.99,
		UpdatedAt:       day(2023, time.September, 10),
	},
}

// FixtureCourses returns a copy of the bundled dataset. Callers may reorder
// the copy freely.
func FixtureCourses() []models.Course {
	out := make([]models.Course, len(fixtureCourses))
	copy(out, fixtureCourses)
	return out
}
