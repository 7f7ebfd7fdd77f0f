package content

var intro = Deck{
	ID:       "intro",
	Number:   0,
	Label:    "Course Introduction",
	Title:    "Modern SharePoint Online for Administrators",
	Badge:    "COURSE INTRODUCTION",
	Day:      "Microsoft 365  ·  SharePoint Online  ·  Entra ID  ·  Purview  ·  PowerShell",
	FileName: "00-Course-Introduction.pptx",
	Slides: []Slide{
		{
			Kind:     KindCover,
			Subtitle: "Replaces legacy M55238B  ·  MOC-style structure\nModules + Topics + Hands-on Labs",
			Notes:    "Welcome slide. Introduce yourself and the course. Let participants settle in. This is a modern replacement for legacy M55238B, fully aligned with 2026 Microsoft 365 administration.",
		},
		{
			Kind:     KindCards,
			Title:    "👋  Welcome!",
			Subtitle: "Let's get settled before we begin",
			Items: []Item{
				column("Schedule", "", "3 full days: 09:00 – 17:00", "Breaks every 90 minutes", "Lunch: 12:00 – 13:00"),
				column("Connectivity", "", "Wi-Fi credentials provided", "Lab tenant credentials on your desk", "Bring your own device or use provided"),
				column("Questions", "", "Ask anytime — we encourage it!", "Parking lot for deeper topics", "All materials provided digitally"),
				column("Expectations", "", "Hands-on: ~40% theory, ~60% labs", "Real-world scenarios throughout", "No prior SharePoint admin required"),
			},
			Notes: "Welcome participants. Cover logistics: schedule, breaks, Wi-Fi, restrooms, how to ask questions. Get a quick show of hands on experience level.",
		},
		{
			Kind:  KindTable,
			Title: "👨‍🏫  Meet Your Trainer",
			Table: table([]string{"Field", "Details"},
				row("Name", "[Your Full Name]"),
				row("Title", "[Your Job Title / Role]"),
				row("Company", "[Your Company / Organization]"),
				row("Contact", "[Email or LinkedIn — optional]"),
			),
			Callout: "💬  [Add a brief bio: experience, certifications, areas of expertise, fun fact]",
			Notes:   "Introduce yourself. Share your background, experience, and what makes you excited about this course.",
		},
		{
			Kind:  KindColumns,
			Title: "About This Course",
			Intro: "Duration: 3 Days  ·  Level: Intermediate  ·  Style: MOC-Format  ·  Labs: 12 Hands-on",
			Items: []Item{
				column("👥  Target Audience", "",
					"SharePoint Online Administrators", "Microsoft 365 Administrators", "IT Professionals managing collaboration", "Helpdesk leads supporting SharePoint"),
				column("📋  Prerequisites", "",
					"Basic Microsoft 365 administration knowledge", "Familiarity with PowerShell fundamentals", "Understanding of identity concepts (users, groups)", "Web browser and modern device access"),
			},
			Callout: "🏅 Certification Alignment:  MS-102 (Microsoft 365 Administrator)  ·  SC-300 (Identity & Access Administrator)",
			Notes:   "Position the course: modern replacement for M55238B, covers SPO/M365/Entra/Purview/PowerShell. Emphasize it is 2026-aligned with current admin center UIs.",
		},
		{
			Kind:  KindCards,
			Title: "🎯  What You'll Be Able to Do",
			Intro: "By the end of this 3-day course, you will confidently:",
			Items: []Item{
				card("🏗️ Administer SharePoint Online", "Using modern tools: admin centers, PowerShell, Graph API"),
				card("Secure Collaboration", "Using Entra ID identities, Purview compliance, and sharing controls"),
				card("🗂️ Design Architecture", "Scalable site structures, metadata, and information architecture"),
				card("Manage Discovery", "Configure Microsoft Search, managed properties, bookmarks & verticals"),
				card("⚙️ Automate Administration", "PowerShell scripting, bulk operations, monitoring & auditing"),
			},
			Notes: "These are the 5 key outcomes. By end of 3 days, every learner should be able to do each of these.",
		},
		section("Your 3-Day Journey", "12 Modules  ·  12 Labs  ·  From Foundations to Automation", "🗺️",
			"Transition: overview of the full 3-day schedule."),
		{
			Kind:  KindColumns,
			Title: "3-Day Course Overview",
			Items: []Item{
				column("🏗️ DAY 1", "Tenant Foundations & Site Management  ·  Modules 1 – 3",
					"M365 & SharePoint intro", "Identity & external sharing", "Site collections & storage"),
				column("🗂️ DAY 2", "Information Architecture, Search & Customization  ·  Modules 4 – 7",
					"Permissions & collaboration", "Metadata & Term Store", "Search & Microsoft Search", "Apps & customization"),
				column("⚙️ DAY 3", "Governance, Compliance & Automation  ·  Modules 8 – 12",
					"Purview & compliance", "OneDrive administration", "PowerShell automation", "Monitoring & auditing", "Power Platform (optional)"),
			},
			Notes: "High-level 3-day map. Each day has a clear theme. Day 1 = foundations, Day 2 = information architecture, Day 3 = governance.",
		},
		{
			Kind:  KindColumns,
			Title: "📅  Day 1 — Tenant Foundations & Site Management",
			Items: []Item{
				column("Module 1", "Introduction to Microsoft 365 and SharePoint Online  ·  Lab: Explore the M365 Environment",
					"M365 service architecture", "SharePoint admin centers", "Service limits & quotas"),
				column("Module 2", "Identity, Access, and External Sharing  ·  Lab: Configure Secure Access",
					"Entra ID fundamentals", "Guest access & B2B", "External sharing policies"),
				column("Module 3", "Working with Site Collections  ·  Lab: Manage Site Collections",
					"Team & Communication sites", "M365 Groups integration", "Storage & lifecycle"),
			},
			Notes: "Detailed view of Day 1 modules, topics, and labs.",
		},
		{
			Kind:  KindColumns,
			Title: "📅  Day 2 — Information Architecture, Search & Customization",
			Items: []Item{
				column("Module 4", "Permissions & Collaboration  ·  Lab: Design a Permission Model",
					"Permission inheritance", "Sharing links & scopes", "SP vs M365 groups"),
				column("Module 5", "Metadata & Term Store  ·  Lab: Create & Manage Metadata",
					"Information architecture", "Managed metadata", "Term Store hierarchy"),
				column("Module 6", "Search & Microsoft Search  ·  Lab: Configure Search Experience",
					"Search architecture", "Bookmarks & Q&A", "Search verticals"),
				column("Module 7", "Apps & Customization  ·  Lab: Managing Apps",
					"SPFx overview", "App Catalog", "App governance"),
			},
			Notes: "Detailed view of Day 2 modules: Permissions, Metadata, Search, Apps.",
		},
		{
			Kind:  KindTable,
			Title: "📅  Day 3 — Governance, Compliance & Automation",
			Table: table([]string{"Module", "Topic", "Key Topics", "🧪 Lab"},
				row("Module 8", "Purview & Compliance", "Retention policies · Sensitivity labels · eDiscovery & DLP", "Compliance Controls"),
				row("Module 9", "OneDrive Admin", "Sharing & sync · Storage policies · Device access", "OneDrive Settings"),
				row("Module 10", "PowerShell Automation", "SPO Management Shell · Graph PowerShell · Bulk operations", "Automate Admin Tasks"),
				row("Module 11", "Monitoring & Auditing", "Audit logs · Usage analytics · Governance practices", "Operational Review"),
				row("Module 12", "Power Platform (Optional)", "Power Automate · Power Apps basics · Workflow governance", "Request Workflow"),
			),
			Notes: "Detailed view of Day 3 modules: Compliance, OneDrive, PowerShell, Monitoring, Power Platform.",
		},
		section("The Microsoft 365 Ecosystem", "Where SharePoint Online fits in the bigger picture", "☁️",
			"Transition: Before we start, let's set the context of where SharePoint fits in the M365 ecosystem."),
		{
			Kind:  KindCards,
			Title: "Microsoft 365 Platform at a Glance",
			Intro: "🔐  Foundation: Microsoft Entra ID (Identity + Access)  ·  Authentication  ·  Authorization  ·  Conditional Access  ·  B2B/B2C  ·  Zero Trust",
			Items: []Item{
				card("SharePoint Online", "Sites · Libraries · Content Services"),
				card("☁️ OneDrive for Business", "Personal files · Sync & share"),
				card("Microsoft Teams", "Chat · Meetings · Channel files"),
				card("Exchange Online", "Mail · Calendar · Contacts"),
			},
			Callout: "Cross-Cutting Capabilities:  🔍 Microsoft Search  ·  🛡️ Microsoft Purview  ·  ⚡ Power Platform  ·  📊 Graph API",
			Notes:   "Show the M365 platform: Azure AD/Entra at the base, SharePoint/OneDrive/Teams/Exchange as services, with Purview, Search, and Power Platform as cross-cutting capabilities.",
		},
		{
			Kind:     KindColumns,
			Title:    "The Collaboration Triangle",
			Subtitle: "Three services, one content platform — understanding the relationships",
			Items: []Item{
				column("📡  SharePoint Online", "",
					"Team & Communication sites", "Document libraries & lists", "Intranet & portals", "Content services backbone", "Metadata & search integration"),
				column("☁️  OneDrive for Business", "",
					"Personal file storage", "Sync to desktop/mobile", "Share files externally", "Built ON SharePoint", "Admin controls inherited"),
				column("💬  Microsoft Teams", "",
					"Chat & meetings hub", "Channel-based collaboration", "Files tab = SharePoint library", "M365 Group drives permissions", "Extensible with apps & bots"),
			},
			Callout: "💡 Key Insight:  Every Teams channel stores files in a SharePoint document library. Every OneDrive is technically a personal SharePoint site collection. As a SharePoint admin, you manage all three.",
			Notes:   "The collaboration triangle. SharePoint provides content services, OneDrive provides personal storage, Teams provides the communication layer. They share a common content infrastructure.",
		},
		{
			Kind:     KindTable,
			Title:    "🧰  Your Admin Toolkit",
			Subtitle: "Tools you'll use across all 3 days",
			Table: table([]string{"Tool", "Used for", "Where"},
				row("Microsoft 365 Admin Center", "Tenant settings, users, groups, licenses, service health", "admin.microsoft.com"),
				row("SharePoint Admin Center", "Sites, sharing policies, storage, term store, migration", "admin.sharepoint.com"),
				row("Entra Admin Center", "Identity, Conditional Access, app registrations, B2B", "entra.microsoft.com"),
				row("🛡️ Microsoft Purview Portal", "Compliance, retention, DLP, sensitivity labels, eDiscovery", "purview.microsoft.com"),
				row("PowerShell & Graph API", "SPO Management Shell, Graph PS, bulk ops, reporting, automation", "Shell + Graph Explorer"),
			),
			Notes: "Overview of tools admins will use throughout this course: admin centers, PowerShell, Graph API.",
		},
		section("Lab Environment", "Your sandbox for hands-on learning", "🧪",
			"Transition: let's talk about the lab environment setup."),
		{
			Kind:  KindCards,
			Title: "🧪  Lab Environment",
			Items: []Item{
				card("Shared Demo Tenant", "Microsoft 365 E3/E5 demo tenant pre-configured with training users and Northwind scenario data"),
				card("Your Account", "You'll receive credentials: P01@tenant through P10@tenant. SharePoint Admin role assigned"),
				card("Your Practice Site", "NW-Pxx-ProjectSite (per participant). All labs scoped to YOUR site. No tenant-wide changes!"),
				card("Sample Content", "Pre-loaded document templates: Contracts, metadata worksheets, test files for each lab exercise"),
			},
			Callout: "⚠️ Shared Tenant Rule:  Work ONLY inside your assigned NW-Pxx site. Do NOT modify tenant-wide settings unless instructed by the trainer.",
			Notes:   "Explain the shared demo tenant, participant accounts (P01-P10), and the Northwind scenario. Stress: no tenant-wide changes by participants.",
		},
		{
			Kind:     KindSteps,
			Title:    "📋  The Northwind Scenario",
			Subtitle: "Your training company — all labs are set in the Northwind universe",
			Intro:    "Northwind Traders is a mid-sized company with 500 employees across 3 offices. They've recently migrated to Microsoft 365 and need a SharePoint administrator to set up their collaboration environment. You've been hired as that admin.",
			Items: []Item{
				step("Day 1", "Lab 1–3", "Set up tenant, configure identity & sharing, create sites"),
				step("Day 2a", "Lab 4–5", "Design permissions, build metadata & information architecture"),
				step("Day 2b", "Lab 6–7", "Configure search, deploy apps & customization"),
				step("Day 3a", "Lab 8–9", "Implement compliance, configure OneDrive policies"),
				step("Day 3b", "Lab 10–12", "Automate with PowerShell, audit & monitor, build workflows"),
			},
			Notes: "Introduce the Northwind scenario: a fictional company whose SharePoint environment you'll administer. Labs build on each other using this consistent scenario.",
		},
		section("Key Concepts Preview", "Setting the foundation before we dive in", "🔑",
			"Transition: a quick primer on the key concepts we'll cover."),
		{
			Kind:     KindCards,
			Title:    "SharePoint Online in 2026",
			Subtitle: "What makes the modern platform different — and why this course exists",
			Items: []Item{
				card("☁️ Cloud-Native", "No servers to manage. Microsoft handles infrastructure, patching, and scaling. You focus on configuration and governance."),
				card("Entra-Integrated", "Identity powered by Microsoft Entra ID. Zero Trust, Conditional Access, B2B collaboration built in from day one."),
				card("🛡️ Purview-Protected", "Compliance isn't an add-on. Retention, sensitivity labels, DLP, and eDiscovery are native to the platform."),
				card("Graph-Powered", "Microsoft Graph API is the unified endpoint. PowerShell modules, admin centers, and apps all use Graph under the hood."),
				card("Search-Unified", "Microsoft Search spans SharePoint, OneDrive, Teams, and beyond. One search experience, admin-managed."),
				card("AI-Ready", "Copilot for Microsoft 365 relies on SharePoint content. Good admin practices = better AI results."),
			},
			Notes: "Position SPO in 2026: Cloud-only, Entra-integrated, Purview-compliant, AI-ready. No more on-prem. Modern admin center. Graph-based APIs.",
		},
		{
			Kind:     KindTable,
			Title:    "SharePoint Online vs SharePoint Server",
			Subtitle: "This course focuses exclusively on SharePoint Online (cloud)",
			Table: table([]string{"Aspect", "SharePoint Online", "SharePoint Server"},
				row("Infrastructure", "Microsoft-managed cloud", "Your servers & farms"),
				row("Updates", "Continuous (automatic)", "Manual patching cycles"),
				row("Identity", "Microsoft Entra ID", "Active Directory on-prem"),
				row("Administration", "Modern admin centers + PowerShell", "Central Admin + PS"),
				row("Customization", "SPFx, Power Platform", "Full-trust solutions, SPFx"),
				row("Storage", "Pooled tenant storage", "SQL Server databases"),
				row("Compliance", "Purview-native", "Separate configuration"),
				row("Scale", "Multi-tenant, global CDN", "Capacity planning required"),
				row("Cost Model", "Per-user licensing", "Server licensing + hardware"),
			),
			Notes: "For participants coming from on-prem SharePoint, clarify the key differences. This course is 100% SharePoint Online / cloud-focused.",
		},
		{
			Kind:  KindCards,
			Title: "💡  Tips for Getting the Most Out of This Course",
			Items: []Item{
				card("Ask Questions", "There are no dumb questions. If you're confused, someone else probably is too. Speak up anytime or use the parking lot."),
				card("Do Every Lab", "Labs are where learning sticks. Follow the steps carefully, but also experiment. Your practice site is your sandbox."),
				card("Take Notes", "Jot down real-world connections: 'This would solve X problem at my organization.' These notes will be gold after the course."),
				card("Help Each Other", "Pair up for labs. Explain concepts to your neighbor. Teaching is the best way to learn and verify your understanding."),
				card("Use References", "Every module links to official Microsoft documentation. Bookmark them! They'll be your go-to resource after the course ends."),
			},
			Notes: "Practical tips for getting the most out of this course.",
		},
		{
			Kind:     KindCards,
			Title:    "🙋  Your Turn — Introductions",
			Subtitle: "Let's get to know each other! Take 1 minute each.",
			Items: []Item{
				card("Your Name & Role", "What's your job title and what do you do day-to-day?"),
				card("Your SharePoint Experience", "None / Basic User / Admin / Power User?"),
				card("What You Hope to Learn", "One skill or topic you want to master by Day 3"),
				card("One Fun Fact", "Something interesting about you — keep it light!"),
			},
			Callout: "🎤 Trainer will go first to break the ice!",
			Notes:   "Use this slide for participant introductions. Each person shares: name, role, experience with SharePoint, and what they hope to learn.",
		},
		closing("Ready? Let's Begin! 🚀",
			"Next → Module 1: Introduction to Microsoft 365 and SharePoint Online",
			"Closing slide of the introduction. Transition to Module 1.",
			"3 Days  ·  12 Modules  ·  12 Labs  ·  1 Goal:",
			"Make you a confident, modern SharePoint Admin",
		),
	},
}
