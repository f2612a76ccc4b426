package digest

// DefaultCategory is the universal fallback bucket present in every channel
// taxonomy. It never participates in keyword scoring.
const DefaultCategory = "default"

// DefaultTaxonomies builds the built-in classification tables, one per
// channel type. The result is constructed once at startup and passed to the
// classifier and assembler as read-only data.
func DefaultTaxonomies() map[string]*ChannelTaxonomy {
	return map[string]*ChannelTaxonomy{
		"engineering":    engineeringTaxonomy(),
		"data_analytics": dataAnalyticsTaxonomy(),
		"management":     managementTaxonomy(),
	}
}

func engineeringTaxonomy() *ChannelTaxonomy {
	return &ChannelTaxonomy{
		Categories: map[string]Category{
			"tutorial": {
				Key:       "tutorial",
				Icon:      "📖",
				Name:      "Tutorials & Guides",
				Primary:   []string{"tutorial", "guide", "how to", "learn", "step by step", "hands-on"},
				Secondary: []string{"example", "demo", "walkthrough"},
			},
			"bug": {
				Key:       "bug",
				Icon:      "🐛",
				Name:      "Bug Fixes & Issues",
				Primary:   []string{"bug fix", "issue fix", "problem fix", "error fix", "debug"},
				Secondary: []string{"bug", "issue", "problem", "error", "debug"},
			},
			"security": {
				Key:       "security",
				Icon:      "🔒",
				Name:      "Security & Vulnerabilities",
				Primary:   []string{"security", "vulnerability", "exploit", "hack", "breach", "cyber"},
				Secondary: []string{"secure", "protect", "defense"},
			},
			"release": {
				Key:       "release",
				Icon:      "🔄",
				Name:      "Releases & Updates",
				Primary:   []string{"release", "update", "version", "new feature", "announcement"},
				Secondary: []string{"launch", "deploy"},
			},
			"ai": {
				Key:       "ai",
				Icon:      "🤖",
				Name:      "AI & Machine Learning",
				Primary:   []string{"artificial intelligence", "machine learning", "neural network", "deep learning"},
				Secondary: []string{"ai model", "ml model", "neural", "deep learning"},
			},
			"cloud": {
				Key:       "cloud",
				Icon:      "☁️",
				Name:      "Cloud & Infrastructure",
				Primary:   []string{"cloud", "aws", "azure", "gcp", "infrastructure"},
				Secondary: []string{"serverless", "kubernetes", "docker"},
			},
			"database": {
				Key:       "database",
				Icon:      "🗄️",
				Name:      "Databases & Storage",
				Primary:   []string{"database", "sql", "nosql", "storage", "query", "elasticsearch"},
				Secondary: []string{"db", "data store", "cache"},
				Exclude:   []string{"search", "application", "development", "engineering", "software"},
			},
			"mobile": {
				Key:       "mobile",
				Icon:      "📱",
				Name:      "Mobile Development",
				Primary:   []string{"mobile", "ios", "android", "app", "smartphone"},
				Secondary: []string{"flutter", "react native", "swift", "kotlin"},
			},
			"web": {
				Key:       "web",
				Icon:      "🌐",
				Name:      "Web Development",
				Primary:   []string{"web", "frontend", "backend", "javascript", "react", "angular", "application", "development", "engineering", "software"},
				Secondary: []string{"api", "server", "client", "browser", "programming", "code"},
			},
			"game": {
				Key:       "game",
				Icon:      "🎮",
				Name:      "Game Development",
				Primary:   []string{"game", "gaming", "unity", "unreal", "3d"},
				Secondary: []string{"game engine", "graphics", "physics"},
			},
			"design": {
				Key:       "design",
				Icon:      "🎨",
				Name:      "Design & UX",
				Primary:   []string{"design", "ui", "ux", "interface", "user experience"},
				Secondary: []string{"layout", "wireframe", "prototype"},
			},
			"architecture": {
				Key:       "architecture",
				Icon:      "🏗️",
				Name:      "Architecture & Design Patterns",
				Primary:   []string{"architecture", "architect", "design pattern", "system design", "microservices", "distributed systems", "scalability", "clean architecture", "domain driven design", "ddd"},
				Secondary: []string{"pattern", "design principles", "best practices", "performance", "scaling", "high availability", "fault tolerance", "resilience"},
			},
			DefaultCategory: {
				Key:  DefaultCategory,
				Icon: "📢",
				Name: "Other Articles",
			},
		},
		TagMapping: map[string]string{
			"go": "web", "golang": "web", "python": "web", "javascript": "web",
			"java": "web", "ruby": "web", "php": "web", "rust": "web",
			"c++": "web", "c#": "web", "dotnet": "web", "node": "web",
			"react": "web", "angular": "web", "vue": "web", "django": "web",
			"flask": "web", "spring": "web", "rails": "web", "laravel": "web",
			"express": "web", "nextjs": "web", "nuxt": "web", "svelte": "web",
			"typescript": "web", "application": "web", "app": "web",
			"development": "web", "developer": "web", "engineering": "web",
			"software": "web", "programming": "web", "code": "web",

			"swift": "mobile", "kotlin": "mobile", "android": "mobile",
			"ios": "mobile", "flutter": "mobile", "reactnative": "mobile",
			"xamarin": "mobile",

			"unity": "game", "unreal": "game", "godot": "game",
			"gamedev": "game", "gaming": "game",

			"ai": "ai", "machine-learning": "ai", "ml": "ai",
			"artificial-intelligence": "ai", "deep-learning": "ai",
			"neural-networks": "ai", "tensorflow": "ai", "pytorch": "ai",

			"cloud": "cloud", "aws": "cloud", "azure": "cloud", "gcp": "cloud",
			"kubernetes": "cloud", "docker": "cloud", "devops": "cloud",

			"database": "database", "sql": "database", "nosql": "database",
			"mongodb": "database", "postgresql": "database", "mysql": "database",
			"redis": "database",

			"security": "security", "cybersecurity": "security",
			"hacking": "security", "privacy": "security",

			"design": "design", "ui": "design", "ux": "design",
			"frontend": "design", "css": "design", "html": "design",

			"tutorial": "tutorial", "how-to": "tutorial", "guide": "tutorial",
			"learning": "tutorial",

			"architecture": "architecture", "architect": "architecture",
			"design-pattern": "architecture", "design-patterns": "architecture",
			"system-design": "architecture", "microservices": "architecture",
			"distributed-systems": "architecture", "scalability": "architecture",
			"performance": "architecture", "clean-code": "architecture",
			"clean-architecture": "architecture", "ddd": "architecture",
			"domain-driven-design": "architecture",
		},
		Priority: []string{
			"tutorial", "web", "cloud", "database", "ai", "security", "release",
			"bug", "mobile", "game", "design", "architecture",
		},
	}
}

func dataAnalyticsTaxonomy() *ChannelTaxonomy {
	return &ChannelTaxonomy{
		Categories: map[string]Category{
			"data_engineering": {
				Key:       "data_engineering",
				Icon:      "⚙️",
				Name:      "Data Engineering",
				Primary:   []string{"data engineering", "etl", "data pipeline", "data warehouse", "data modeling"},
				Secondary: []string{"data ops", "data mesh", "data fabric"},
			},
			"data_science": {
				Key:       "data_science",
				Icon:      "🔬",
				Name:      "Data Science",
				Primary:   []string{"data science", "data mining", "data analysis", "statistical analysis"},
				Secondary: []string{"predictive modeling", "data scientist"},
			},
			"analytics": {
				Key:       "analytics",
				Icon:      "📊",
				Name:      "Analytics & BI",
				Primary:   []string{"analytics", "business intelligence", "bi", "data analytics"},
				Secondary: []string{"reporting", "metrics", "kpis", "insights"},
			},
			"ml": {
				Key:       "ml",
				Icon:      "🤖",
				Name:      "Machine Learning",
				Primary:   []string{"machine learning", "ml", "predictive analytics"},
				Secondary: []string{"model training", "model deployment"},
			},
			"ai": {
				Key:       "ai",
				Icon:      "🧠",
				Name:      "Artificial Intelligence",
				Primary:   []string{"artificial intelligence", "ai", "deep learning"},
				Secondary: []string{"neural networks", "cognitive computing"},
			},
			"big_data": {
				Key:       "big_data",
				Icon:      "💾",
				Name:      "Big Data",
				Primary:   []string{"big data", "data lake", "hadoop", "spark"},
				Secondary: []string{"distributed computing", "data processing"},
			},
			"data_quality": {
				Key:       "data_quality",
				Icon:      "✅",
				Name:      "Data Quality",
				Primary:   []string{"data quality", "data testing", "data validation"},
				Secondary: []string{"data profiling", "data monitoring"},
			},
			"data_governance": {
				Key:       "data_governance",
				Icon:      "📋",
				Name:      "Data Governance",
				Primary:   []string{"data governance", "data strategy", "data security"},
				Secondary: []string{"data privacy", "data ethics"},
			},
			"data_visualization": {
				Key:       "data_visualization",
				Icon:      "📈",
				Name:      "Data Visualization",
				Primary:   []string{"data visualization", "data storytelling", "dashboard"},
				Secondary: []string{"charts", "graphs", "reports"},
			},
			DefaultCategory: {
				Key:  DefaultCategory,
				Icon: "📢",
				Name: "Other Articles",
			},
		},
		TagMapping: map[string]string{
			"data-engineering": "data_engineering", "etl": "data_engineering",
			"data-pipeline": "data_engineering", "data-warehouse": "data_engineering",
			"data-modeling": "data_engineering", "data-architecture": "data_engineering",
			"data-ops": "data_engineering", "data-engineer": "data_engineering",

			"data-science": "data_science", "data-mining": "data_science",
			"data-analysis": "data_science", "data-scientist": "data_science",

			"analytics": "analytics", "bi": "analytics",
			"business-intelligence": "analytics", "data-analytics": "analytics",
			"data-reporting": "analytics", "data-metrics": "analytics",
			"data-kpis": "analytics", "data-insights": "analytics",
			"data-discovery": "analytics", "data-exploration": "analytics",
			"data-analyst": "analytics",

			"machine-learning": "ml", "ml": "ml",

			"artificial-intelligence": "ai", "ai": "ai",

			"big-data": "big_data", "data-lake": "big_data",

			"data-quality": "data_quality", "data-observability": "data_quality",
			"data-testing": "data_quality", "data-validation": "data_quality",
			"data-profiling": "data_quality", "data-monitoring": "data_quality",

			"data-governance": "data_governance", "data-strategy": "data_governance",
			"data-security": "data_governance", "data-privacy": "data_governance",
			"data-ethics": "data_governance", "data-catalog": "data_governance",
			"data-lineage": "data_governance",

			"data-visualization": "data_visualization",
			"data-storytelling":  "data_visualization",
			"data-dashboard":     "data_visualization",

			// Historic mappings to a retired data_architecture bucket; the
			// classifier resolves names missing from the taxonomy to default.
			"data-mesh":      "data_architecture",
			"data-fabric":    "data_architecture",
			"data-architect": "data_architecture",
		},
		Priority: []string{
			"data_engineering", "data_science", "analytics", "ml", "ai",
			"big_data", "data_quality", "data_governance", "data_visualization",
		},
	}
}

func managementTaxonomy() *ChannelTaxonomy {
	return &ChannelTaxonomy{
		Categories: map[string]Category{
			"leadership": {
				Key:       "leadership",
				Icon:      "👑",
				Name:      "Leadership",
				Primary:   []string{"leadership", "leadership development", "leadership skills", "leadership style", "leadership qualities"},
				Secondary: []string{"executive", "management style", "leadership role", "leadership position"},
				Exclude:   []string{"engineering", "technical", "software", "development", "kubernetes", "container", "cloud", "infrastructure"},
			},
			"team_management": {
				Key:       "team_management",
				Icon:      "👥",
				Name:      "Team Management",
				Primary:   []string{"team management", "team building", "team collaboration"},
				Secondary: []string{"team leadership", "team development"},
			},
			"product_management": {
				Key:       "product_management",
				Icon:      "📦",
				Name:      "Product Management",
				Primary:   []string{"product management", "product development", "product strategy"},
				Secondary: []string{"product innovation", "product planning"},
			},
			"project_management": {
				Key:       "project_management",
				Icon:      "📋",
				Name:      "Project Management",
				Primary:   []string{"project management", "project planning", "project execution"},
				Secondary: []string{"project delivery", "project methodology"},
			},
			"agile": {
				Key:       "agile",
				Icon:      "🔄",
				Name:      "Agile & Scrum",
				Primary:   []string{"agile", "scrum", "agile development", "agile transformation"},
				Secondary: []string{"sprint", "kanban", "agile methodology"},
			},
			"strategy": {
				Key:       "strategy",
				Icon:      "🎯",
				Name:      "Strategy",
				Primary:   []string{"strategy", "strategic planning", "business strategy"},
				Secondary: []string{"strategic thinking", "strategic management"},
			},
			"innovation": {
				Key:       "innovation",
				Icon:      "💡",
				Name:      "Innovation",
				Primary:   []string{"innovation", "business innovation", "innovation management"},
				Secondary: []string{"innovative thinking", "innovation strategy"},
			},
			"culture": {
				Key:       "culture",
				Icon:      "🏢",
				Name:      "Culture & Organization",
				Primary:   []string{"culture", "company culture", "organizational culture"},
				Secondary: []string{"workplace culture", "cultural transformation"},
			},
			"career": {
				Key:       "career",
				Icon:      "💼",
				Name:      "Career Development",
				Primary:   []string{"career", "career development", "career growth"},
				Secondary: []string{"professional development", "career planning"},
			},
			DefaultCategory: {
				Key:  DefaultCategory,
				Icon: "📢",
				Name: "Other Articles",
			},
		},
		// Management feeds carry free-form editorial tags rather than a
		// stable vocabulary, so classification relies on keyword scoring.
		TagMapping: map[string]string{},
		Priority: []string{
			"leadership", "team_management", "product_management",
			"project_management", "agile", "strategy", "innovation",
			"culture", "career",
		},
	}
}
