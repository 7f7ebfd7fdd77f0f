package content

var module01 = moduleDeck(1,
	"Introduction to Microsoft 365 & SharePoint Online",
	"Day 1  ·  Tenant Foundations & Site Management",
	[]Slide{
		cover("Welcome participants. Introduce yourself and set the stage for 3 days of hands-on SharePoint Online administration."),
		agenda("📋  Module 1 Agenda",
			"Walk through the agenda so participants know what to expect from this module.",
			"SharePoint Online Overview — What it is & why it matters",
			"SharePoint, OneDrive & Teams — How they work together",
			"Microsoft 365 Licensing — Plans that include SharePoint",
			"Microsoft 365 Admin Mental Model — Architecture overview",
			"Admin Centers — M365 & SharePoint admin portals",
			"SPO vs SP Server — Conceptual comparison",
			"Service Limits & Boundaries — How to approach them",
			"Lab 1 Preview & Knowledge Check",
		),
		bullets("🎯  Module Objectives",
			"Review learning objectives. These align with what participants will be assessed on.",
			"Describe Microsoft 365 service architecture at a practical admin level",
			"Explain the role of SharePoint Online in Microsoft 365 collaboration and content services",
			"Compare SharePoint Online and SharePoint Server conceptually",
			"Navigate Microsoft 365 admin center and SharePoint admin center for baseline tenant checks",
			"Locate and interpret service limits, quotas, and boundaries using official Microsoft documentation",
		),
		section("SharePoint Online Overview", "What it is, what it does, and why admins should care", "🌐",
			"Transition to the SharePoint Online overview section."),
		{
			Kind:  KindCards,
			Title: "What is SharePoint Online?",
			Intro: "SharePoint Online is the content & collaboration platform in Microsoft 365 that helps organizations share and manage content, knowledge, and applications.",
			Items: []Item{
				card("🏗️ Sites", "Team sites, Communication sites, Hub sites for collaboration & publishing"),
				card("📁 Document Libraries", "Controlled storage with versioning, metadata, co-authoring & sharing"),
				card("🔍 Content Services", "Microsoft Search, content types, managed metadata, retention & compliance"),
				card("⚡ Integration", "Powers Teams files, OneDrive storage, Power Platform connectors"),
			},
			Notes: "SharePoint Online is the content and collaboration backbone of Microsoft 365. Emphasize that it's not just a file store — it powers intranets, content services, and integrated workflows.",
		},
		{
			Kind:  KindCards,
			Title: "Common SharePoint Admin Responsibilities",
			Items: []Item{
				card("Tenant Policies", "Sharing, access control, external collaboration settings"),
				card("Site Lifecycle", "Creation, ownership, storage quotas, deletion & restore"),
				card("🏷️ Information Architecture", "Metadata, term store, content types (covered later)"),
				card("Operational Health", "Service health dashboard, message center, admin notifications"),
				card("⚖️ Governance & Compliance", "Purview policies, audit visibility, retention alignment"),
			},
			Notes: "Highlight the key areas a SharePoint admin manages day-to-day.",
		},
		section("SharePoint + OneDrive + Teams", "Understanding the relationship between Microsoft 365's collaboration pillars", "🤝",
			"Transition to the integration section."),
		{
			Kind:  KindColumns,
			Title: "The Microsoft 365 Collaboration Triangle",
			Items: []Item{
				column("SharePoint Online", "Content platform & intranet engine",
					"📄 Shared document libraries", "🌐 Team & communication sites", "🔎 Enterprise search", "🏷️ Metadata & governance"),
				column("Microsoft Teams", "Collaboration hub & user experience",
					"💬 Chat & channels", "📹 Meetings & calls", "📋 Tabs & apps", "📁 Files tab → SharePoint"),
				column("OneDrive for Business", "Personal cloud storage powered by SharePoint",
					"👤 Individual file storage", "🔄 Sync to desktop", "↗️ Easy sharing via links", "💬 Private chat files land here"),
			},
			Callout: "🔑 Key: Files shared in Teams channels are stored in SharePoint. Files in private chats are stored in the sender's OneDrive.",
			Notes:   "Key insight: SharePoint is the content layer; Teams is the collaboration UX; OneDrive is personal storage built on SharePoint technology. Files uploaded in Teams channels go to SharePoint; files in private chat go to OneDrive.",
		},
		{
			Kind:  KindCards,
			Title: "What Happens When You Create a Team?",
			Intro: "Every new Microsoft Team automatically provisions these resources:",
			Items: []Item{
				card("Microsoft 365 Group", "Unified identity & membership"),
				card("SharePoint Team Site", "Document library for channel files"),
				card("Exchange Shared Mailbox", "Group conversations & calendar"),
				card("OneNote Notebook", "Shared notebook for the team"),
				card("Planner Board", "Task management for the group"),
			},
			Callout: "💡 Admin Insight: Many sites in your SharePoint admin center are Teams-connected. Deleting a site can impact Teams!",
			Notes:   "When a new Team is created, Microsoft 365 automatically provisions: an M365 Group, a SharePoint Team site, an Exchange shared mailbox, a OneNote notebook, and Planner. This means every Team already has a SharePoint site behind it.",
		},
		section("Microsoft 365 Licensing", "Which plans include SharePoint Online, OneDrive, and Teams?", "🪪",
			"Transition to licensing section."),
		{
			Kind:  KindTable,
			Title: "Microsoft 365 Plans — SharePoint Inclusion",
			Table: table([]string{"Plan Family", "SharePoint", "OneDrive", "Teams", "Desktop Apps"},
				row("Business Basic", "✅", "✅", "✅", "❌"),
				row("Business Standard", "✅", "✅", "✅", "✅"),
				row("Business Premium", "✅", "✅", "✅", "✅"),
				row("Enterprise E3", "✅", "✅", "✅*", "✅"),
				row("Enterprise E5", "✅", "✅", "✅*", "✅"),
				row("Frontline F1/F3", "✅ (limited)", "✅ (2 GB)", "✅", "❌ / ✅*"),
			),
			Callout: "📦 Tenant Storage: 1 TB base + 10 GB per licensed user  |  Max per site: 25 TB  |  Up to 2 million sites per org",
			Notes:   "Emphasize that SharePoint, OneDrive, and Teams are included in most M365/O365 plans. Storage is pooled at the tenant level: 1 TB base + 10 GB per license. Frontline (F1/F3) plans have limited storage. Standalone SharePoint plans exist too.",
		},
		{
			Kind:  KindCards,
			Title: "Standalone Plans & Key Add-ons",
			Items: []Item{
				card("SharePoint Online Plan 1", "Basic sites, document libraries, external sharing"),
				card("SharePoint Online Plan 2", "Plan 1 + advanced search, enterprise features"),
				card("OneDrive for Business Plan 1", "Personal storage (1 TB per user)"),
				card("OneDrive for Business Plan 2", "Plan 1 + unlimited storage, advanced compliance"),
				card("Microsoft Purview Add-ons", "Retention, DLP, eDiscovery — if not in your base plan"),
				card("Power Platform Add-ons", "Additional AI Builder credits, premium connectors"),
			},
			Callout: "💡 Tip: You can combine Enterprise, Business, and standalone plans within a single tenant.",
			Notes:   "Highlight standalone options for orgs that don't need full M365. SharePoint Plan 1 & 2, OneDrive Plan 1 & 2 are available. Compliance features (retention, DLP, eDiscovery) require E3/E5 or Purview add-ons.",
		},
		section("Microsoft 365 Architecture", "The admin mental model for SharePoint professionals", "🧩",
			"Transition to architecture overview."),
		{
			Kind:  KindSteps,
			Title: "Microsoft 365: The Admin Mental Model",
			Items: []Item{
				step("🔑 Identity Layer", "Microsoft Entra ID", "Authentication, authorization, Conditional Access, device policies"),
				step("⚙️ Workloads Layer", "SharePoint · OneDrive · Teams · Exchange · Purview · Search", "The services your users interact with — each has its own admin surface"),
				step("🖥️ Admin Surfaces", "M365 Admin Center + Workload Admin Centers", "Central portal for tenant-wide config; workload portals for service-specific settings"),
				step("🤖 Automation Layer", "Microsoft Graph API + PowerShell Modules", "Programmatic access for reporting, bulk operations, and integration"),
			},
			Notes: "Emphasize that many 'SharePoint issues' are actually identity/policy issues. SharePoint doesn't exist in isolation — it depends on Entra ID for auth, Purview for compliance, etc.",
		},
		{
			Kind:  KindBullets,
			Title: "Why This Matters to SharePoint Admins",
			Bullets: []string{
				"Identity & access policies (Entra ID, Conditional Access) control who can reach SharePoint",
				"Compliance controls (Microsoft Purview) govern retention, DLP, and sensitivity labels",
				"Search & content experiences are integrated across all Microsoft 365 workloads",
				"Teams file storage IS SharePoint — admin changes affect both",
				"OneDrive inherits SharePoint sharing policies (OneDrive ≤ SharePoint)",
				"Power Platform connectors rely on SharePoint for content sources",
			},
			Callout: "🔎 Many 'SharePoint issues' are actually identity or policy issues originating outside SharePoint.",
			Notes:   "Cross-service dependencies: a user can't access a SharePoint site if Conditional Access blocks them, even though SharePoint config looks fine. Train admins to think across services.",
		},
		{
			Kind:  KindCards,
			Title: "Microsoft 365 Admin Center — For SPO Admins",
			Items: []Item{
				card("🔍 Service Health", "Is it you or is it the service? Check here FIRST."),
				card("📢 Message Center", "Upcoming changes that may impact SharePoint governance."),
				card("👤 Roles & Licenses", "Confirm admin roles and user licensing assignments."),
				card("📧 Tenant Context", "Verify tenant name, domains, and subscription info."),
			},
			Callout: "✅ Good Practice: 1) Service health first → 2) Message center next → 3) Then investigate your config",
			Notes:   "Build the 'service health first' habit. Check service health before troubleshooting. Review message center to understand upcoming changes.",
		},
		{
			Kind:  KindCards,
			Title: "SharePoint Admin Center (Modern)",
			Items: []Item{
				card("Sites Management", "Create, view, manage all site collections at scale"),
				card("Sharing & Access Policies", "Tenant-wide sharing defaults, guest access, link types"),
				card("Storage & Usage", "Monitor storage consumption, set quotas, view usage reports"),
				card("Settings & Org-wide Config", "Default site creation, notifications, API access"),
				card("Content Services", "Term store, content type hub, search schema (linked)"),
			},
			Callout: "📌 Navigation principle: Understand which settings are tenant-wide vs site-specific, and which are 'policy' vs 'operational configuration'.",
			Notes:   "SharePoint admin center focuses on sites, policies, and storage. UI labels can change — teach finding categories, not memorizing clicks.",
		},
		section("SPO vs SharePoint Server", "A conceptual comparison for modern admins", "⚖️",
			"Transition to comparison section."),
		{
			Kind:  KindTable,
			Title: "SharePoint Online vs SharePoint Server",
			Table: table([]string{"Dimension", "SharePoint Online", "SharePoint Server"},
				row("Deployment & Ownership", "Microsoft operates the service; you control config & governance", "Your infrastructure, patching, upgrades, capacity planning"),
				row("Change Cadence", "Continuous service updates; focus on governance & adoption", "Changes follow your maintenance and upgrade schedule"),
				row("Integration Model", "Designed for M365 integration (Entra ID, Purview, Teams, Graph)", "Often requires custom design and on-prem dependencies"),
				row("Customization", "Client-side solutions, SPFx, API-based (Graph/REST)", "Farm solutions, server-side customization patterns"),
			),
			Callout: "🎯 Admin Takeaway: SPO administration = policy + governance + lifecycle + integration (not server ops)",
			Notes:   "Keep this conceptual. Avoid deep feature checklists. Focus on the operating model difference: cloud-operated vs self-operated.",
		},
		section("Service Limits & Boundaries", "How to approach platform constraints safely", "📏",
			"Transition to limits section."),
		{
			Kind:  KindCards,
			Title: "Service Limits, Quotas & Boundaries",
			Items: []Item{
				card("Limits / Boundaries", "Hard platform constraints — what the service CAN support"),
				card("Quotas", "Configurable allocations (e.g., storage per site)"),
				card("Recommendations", "Guidance for performance and manageability"),
			},
			Bullets: []string{
				"Max 25 TB per site collection",
				"Up to 2 million sites per organization",
				"30 million items per list/library (but 5,000 list view threshold)",
				"Tenant storage = 1 TB + 10 GB per licensed user",
			},
			Callout: "✅ Safe approach: Don't memorize → Verify in Microsoft Learn → Document scenario-specific limits",
			Notes:   "Do NOT memorize numbers. Limits change. Always verify in official docs. Document which limit matters to YOUR scenario.",
		},
		{
			Kind:  KindBullets,
			Title: "🏢 Lab Scenario & Shared Tenant Rules",
			Bullets: []string{
				"Scenario: Project Northwind Intranet Modernization",
				"One tenant shared by: Trainer + 10 Admin Participants (P01–P10)",
				"Use your Participant ID for all site/group/resource naming",
				"Avoid tenant-wide changes unless marked as Trainer-only",
				"Module 1 labs focus on orientation and verification — no destructive changes",
			},
			Callout: "⚠️ Shared tenant = prevent collisions. Most hands-on changes happen in participant-isolated practice sites (later modules).",
			Notes:   "Set shared-tenant rules. Emphasize participant IDs and collision avoidance.",
		},
		{
			Kind:  KindSteps,
			Title: "🔬 Lab 1 Preview — Exploring the Microsoft 365 Environment",
			Items: []Item{
				step("Task 1", "Access Microsoft 365 Admin Center", "Sign in, confirm your role and tenant context"),
				step("Task 2", "Review SharePoint Online tenant settings", "Navigate SharePoint admin center, explore settings areas"),
				step("Task 3", "Check Service Health", "Find current service status for SharePoint & OneDrive"),
				step("Task 4", "Review Message Center", "Identify recent announcements affecting SharePoint"),
			},
			Callout: "📸 Capture screenshots of: your admin role, service health status, and at least one Message Center post.",
			Notes:   "Explain what learners should capture in validation checkpoints during the lab.",
		},
		{
			Kind:  KindQuiz,
			Title: "🧠 Knowledge Check",
			Items: []Item{
				qa("Which Microsoft 365 component is responsible for identity and access control?", "Microsoft Entra ID"),
				qa("Why should a SharePoint admin care about Message Center?", "It announces changes that can affect governance, features, and UX"),
				qa("Name two conceptual differences between SharePoint Online and SharePoint Server.", "Cloud vs self-operated; continuous vs scheduled; integration model differs"),
				qa("What is the safe approach to service limits in documentation?", "Verify current values in official docs; avoid memorized numbers"),
			},
			Callout: "💬 Discuss with your neighbour — then we'll share answers.",
			Notes:   "Use this as a discussion slide. Encourage short answers. Gauge baseline understanding.",
		},
	},
)
