package keyword

import "strings"

// Reference vocabularies for the four closed categories. Matching is by
// normalized form, so "Node.js", "nodejs" and "node js" all hit the same
// entry. Anything outside these lists falls through to Domain Keywords.

var programmingLanguages = []string{
	"javascript", "python", "java", "typescript", "c++", "c#", "csharp", "c", "ruby",
	"php", "swift", "kotlin", "go", "golang", "rust", "scala", "r", "matlab",
	"perl", "shell", "bash", "powershell", "sql", "html", "css", "dart", "lua",
	"objective-c", "assembly", "fortran", "cobol", "haskell", "elixir", "clojure",
}

var toolsAndTechnologies = []string{
	// Version control
	"git", "github", "gitlab", "bitbucket", "svn", "mercurial",
	// Databases
	"mongodb", "postgresql", "mysql", "sqlite", "redis", "cassandra", "dynamodb",
	"oracle", "mariadb", "elasticsearch", "neo4j", "couchdb", "firebase",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform",
	"ansible", "vagrant", "circleci", "travis", "heroku", "netlify", "vercel",
	"digitalocean", "cloudflare",
	// Editors and IDEs
	"vscode", "visual studio", "intellij", "pycharm", "eclipse", "sublime",
	"atom", "vim", "emacs", "xcode", "android studio",
	// Build tools and package managers
	"npm", "yarn", "webpack", "babel", "gulp", "grunt", "maven", "gradle",
	"pip", "composer", "nuget",
	// Testing
	"jest", "mocha", "chai", "pytest", "junit", "selenium", "cypress",
	"postman", "insomnia",
	// Monitoring and analytics
	"grafana", "prometheus", "datadog", "newrelic", "splunk", "kibana",
	"google analytics", "mixpanel",
	// Design and collaboration
	"figma", "sketch", "adobe xd", "photoshop", "illustrator", "jira",
	"confluence", "trello", "slack", "notion", "asana", "monday",
}

var technicalSkills = []string{
	// Frontend
	"react", "reactjs", "angular", "vue", "vuejs", "svelte", "nextjs", "next.js",
	"gatsby", "nuxt", "redux", "mobx", "jquery", "bootstrap", "tailwind",
	"material-ui", "mui", "chakra",
	// Backend
	"node.js", "nodejs", "express", "expressjs", "django", "flask", "fastapi",
	"spring", "spring boot", "laravel", "rails", "ruby on rails", "asp.net",
	"nestjs", "koa", "hapi",
	// Mobile
	"react native", "flutter", "ionic", "xamarin", "cordova",
	// Concepts and methodologies
	"rest", "restful", "graphql", "grpc", "soap", "microservices", "serverless",
	"api", "oauth", "jwt", "websocket", "oop", "functional programming",
	"tdd", "bdd", "ci/cd", "devops", "agile", "scrum", "kanban", "waterfall",
	"mvc", "mvvm", "solid", "design patterns", "data structures", "algorithms",
	// Web
	"responsive design", "progressive web app", "pwa", "spa", "ssr", "seo",
	"accessibility", "wcag", "cors", "ajax", "json", "xml",
	// Security
	"authentication", "authorization", "encryption", "ssl", "tls", "https",
	"penetration testing", "owasp",
	// Data and ML
	"machine learning", "deep learning", "neural networks", "tensorflow",
	"pytorch", "scikit-learn", "pandas", "numpy", "data analysis",
	"data visualization", "big data", "hadoop", "spark", "etl",
	// Other
	"blockchain", "web3", "smart contracts", "cryptocurrency",
}

var softSkills = []string{
	// Communication
	"communication", "verbal communication", "written communication",
	"presentation", "public speaking", "active listening", "interpersonal",
	// Leadership and management
	"leadership", "team leadership", "management", "project management",
	"people management", "mentoring", "coaching", "delegation",
	// Collaboration
	"teamwork", "collaboration", "cross-functional", "stakeholder management",
	"relationship building", "networking",
	// Problem solving
	"problem solving", "critical thinking", "analytical", "troubleshooting",
	"debugging", "decision making", "strategic thinking", "innovation",
	"creativity", "research",
	// Work ethic
	"self-motivated", "proactive", "initiative", "adaptability", "flexibility",
	"time management", "organization", "multitasking", "prioritization",
	"attention to detail", "detail-oriented", "reliable", "dependable",
	// Emotional intelligence
	"empathy", "emotional intelligence", "conflict resolution", "negotiation",
	"persuasion", "patience",
	// Learning
	"quick learner", "continuous learning", "self-learning", "curiosity",
	"growth mindset", "resilience",
}

// rule is one step of the categorization chain: first membership hit wins.
type rule struct {
	category Category
	terms    map[string]struct{}
}

// rules are evaluated top-down; order matters because a term may appear in
// more than one vocabulary (e.g. "project management").
var rules = []rule{
	{CategoryProgrammingLanguages, termSet(programmingLanguages)},
	{CategoryTools, termSet(toolsAndTechnologies)},
	{CategoryTechnicalSkills, termSet(technicalSkills)},
	{CategorySoftSkills, termSet(softSkills)},
}

func termSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[Normalize(t)] = struct{}{}
	}
	return set
}

// Categorize maps a token to exactly one category. Unknown or empty tokens
// land in Domain Keywords, never an error.
func Categorize(token string) Category {
	norm := Normalize(token)
	if norm == "" {
		return CategoryDomain
	}
	for _, r := range rules {
		if _, ok := r.terms[norm]; ok {
			return r.category
		}
	}
	return CategoryDomain
}

// displayNames maps common abbreviations to their canonical display form.
var displayNames = map[string]string{
	"js": "JavaScript", "javascript": "JavaScript",
	"ts": "TypeScript", "typescript": "TypeScript",
	"py": "Python", "python": "Python",
	"java": "Java", "node": "Node.js", "nodejs": "Node.js", "node.js": "Node.js",
	"react": "React", "reactjs": "React",
	"html": "HTML", "css": "CSS", "sql": "SQL",
	"aws": "AWS", "gcp": "GCP", "azure": "Azure",
	"ml": "Machine Learning", "ai": "Artificial Intelligence",
	"api": "API", "rest": "REST", "graphql": "GraphQL",
	"ci": "CI/CD", "cd": "CI/CD", "ci/cd": "CI/CD",
	"devops": "DevOps", "agile": "Agile", "scrum": "Scrum",
	"pm": "Project Management", "project management": "Project Management",
}

// DisplayName returns the presentation form of a token: a canonical name for
// known abbreviations, otherwise the token capitalized.
func DisplayName(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return token
	}
	if name, ok := displayNames[strings.ToLower(token)]; ok {
		return name
	}
	lower := strings.ToLower(token)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// New builds a Keyword from a raw token, resolving its category and display
// form.
func New(token string) Keyword {
	return Keyword{
		Display:    DisplayName(token),
		Normalized: Normalize(token),
		Category:   Categorize(token),
	}
}
