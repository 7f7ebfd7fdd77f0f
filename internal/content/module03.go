package content

var module03 = moduleDeck(3,
	"Working with Site Collections",
	"Day 1  ·  Tenant Foundations & Site Management",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "🏗️  Create, manage, and administer modern SharePoint sites",
			Notes:    "Welcome to Module 3. This is where participants get hands-on with their own practice sites.",
		},
		agenda("📋  Module 3 Agenda",
			"Walk through the module agenda. This is the most hands-on module so far.",
			"SharePoint Sites Overview — Types, when to use each",
			"M365 Groups & Teams Integration — Behind the scenes",
			"Hub Sites — Organising your site architecture",
			"Creating Sites — Admin center & PowerShell",
			"Site Admin Operations — Membership, access, recycle bin",
			"Storage Management — Tenant vs site-level quotas",
			"Site Lifecycle — Delete, restore, and retention",
			"PowerShell Basics — Connect and inspect sites",
			"Lab 3 Preview & Knowledge Check",
		),
		bullets("🎯  Module Objectives",
			"Review learning objectives. This module has the most lab tasks.",
			"Create a modern SharePoint site from the SharePoint admin center",
			"Identify where site ownership, admins, and settings are managed",
			"Perform day-to-day site admin tasks (membership, access requests, recycle bin)",
			"Explain and observe how storage limits work at tenant and site level",
			"Delete and restore a site safely using a test site",
			"Connect to SharePoint Online using PowerShell and retrieve site properties",
		),
		section("SharePoint Sites Overview", "Understanding site types, architecture, and when to use each", "🏗️",
			"Transition to the overview of SharePoint site types."),
		{
			Kind:  KindCards,
			Title: "What is a SharePoint Site?",
			Intro: "A site (formerly 'site collection') is the top-level manageable unit in SharePoint Online. It's the container for pages, document libraries, lists, and sub-resources.",
			Items: []Item{
				card("🔗 Unique URL", "Each site gets its own URL under your tenant domain"),
				card("👷 Owner / Admins", "Site-scoped administration and membership control"),
				card("🔐 Permissions", "SharePoint groups with inheritance model"),
				card("📦 Storage", "Consumes tenant pool or has a manual quota"),
				card("🌍 Sharing Config", "Site-level sharing posture (same or more restrictive than org)"),
			},
			Callout: "💡 Many governance and security controls are scoped to the site level — this is why site management matters.",
			Notes:   "A site is the top-level manageable entity in SharePoint. It has its own URL, owners, permissions, storage, and sharing config. Formerly called 'site collections' — now just 'sites' in modern terminology.",
		},
		{
			Kind:  KindColumns,
			Title: "Modern Site Types",
			Items: []Item{
				column("👥 Team Site", "Purpose: Team collaboration",
					"Backed by a Microsoft 365 Group", "Can be connected to a Microsoft Team", "Shared mailbox, calendar, Planner, OneNote",
					"Members collaborate; membership via group", "Default: private (members only)", "Best for: project teams, departments"),
				column("📢 Communication Site", "Purpose: Broadcast & publish",
					"NOT backed by a Microsoft 365 Group (by default)", "Cannot natively connect to Teams", "Beautiful page layouts and templates",
					"Permissions via SharePoint groups (classic model)", "Default: public within org (everyone can read)", "Best for: intranets, news, announcements"),
			},
			Callout: "🎯 Choose Team Site for collaboration, Communication Site for broadcasting.",
			Notes:   "Two primary modern site types: Team Sites (collaboration, groups-backed) and Communication Sites (broadcasting, not group-backed by default).",
		},
		{
			Kind:  KindColumns,
			Title: "Microsoft 365 Groups & Teams — Behind the Scenes",
			Intro: "Team Sites and Teams are connected through Microsoft 365 Groups. Understanding this relationship is crucial.",
			Items: []Item{
				column("Start from SharePoint", "",
					"Create a Team Site (SP Admin Center)", "M365 Group is auto-created", "Can optionally add a Teams team later"),
				column("Start from Teams", "",
					"Create a Teams team (Teams Admin/User)", "M365 Group + SP Team Site created", "Site appears in SP Admin Center"),
			},
			Callout: "⚠️ Deleting a Teams-connected SP site can break the Team. Deleting a Team deletes the SP site.",
			Notes:   "When you create a Team Site, an M365 Group is created. When you create a Teams team, it creates an M365 Group + Team Site. This bidirectional relationship means managing one affects the other.",
		},
		{
			Kind:  KindCards,
			Title: "Hub Sites — Organising Your Architecture",
			Intro: "Hub sites group related sites under a shared brand, navigation, and search experience — without changing permissions.",
			Items: []Item{
				card("🧭 Shared Navigation", "Associated sites inherit the hub's global navigation bar"),
				card("🎨 Common Branding", "Theme, logo, and header applied across all associated sites"),
				card("🔍 Scoped Search", "Search can be scoped to all site content across the hub"),
				card("📰 News Rollup", "Aggregate news posts from all associated sites in one view"),
			},
			Bullets: []string{
				"Hub sites do NOT affect permissions — each associated site keeps its own permissions",
				"A site can associate (join) or dissociate (leave) a hub at any time",
				"Hub registration is done by SharePoint admins; association can be delegated",
			},
			Notes: "Hub sites are the organising layer. They provide shared navigation, branding, and search scope across associated sites. They don't affect permissions.",
		},
		{
			Kind:  KindTable,
			Title: "When to Use Which? — Quick Decision Guide",
			Table: table([]string{"Scenario", "Team Site", "Communication Site", "Hub Site"},
				row("Project team collaboration", "✅ Best fit", "❌ Not ideal", "Associate to hub"),
				row("Company intranet / news", "❌ Not ideal", "✅ Best fit", "Register as hub"),
				row("Department portal", "✅ For team work", "✅ For broadcasting", "Associate to hub"),
				row("Organise 10+ related sites", "N/A", "N/A", "✅ Register hub"),
			),
			Notes: "A quick decision matrix to help admins guide site creation requests.",
		},
		section("Creating & Managing Sites", "Admin center workflow and day-to-day operations", "⚙️",
			"Transition to hands-on site creation and management."),
		{
			Kind:  KindSteps,
			Title: "Creating a Site — Admin Center Workflow",
			Items: []Item{
				step("1", "Open Active Sites", "SharePoint admin center > Sites > Active sites"),
				step("2", "Click Create", "Select '+ Create' to start the site provision wizard"),
				step("3", "Choose Site Type", "Team site or Communication site"),
				step("4", "Configure Details", "Name, URL, owner, language, time zone, storage"),
				step("5", "Site is Provisioned", "Site appears in Active sites within seconds"),
			},
			Callout: "💡 UI can vary between tenants and over time. Learn to find the Create entry point, not memorize exact clicks.",
			Notes:   "Walk through the admin center flow: Active sites → Create → Choose type → Configure.",
		},
		{
			Kind:  KindColumns,
			Title: "Site Details Panel — What to Look For",
			Items: []Item{
				column("📋 General", "",
					"Site URL and name", "Primary owner / admin", "Storage usage (current / limit)", "Hub association status", "Last activity date"),
				column("👥 Membership", "",
					"Site admins (collection admins)", "Owners, Members, Visitors", "Microsoft 365 Group members (if applicable)", "Quick add/remove access"),
				column("⚙️ Settings", "",
					"External sharing configuration", "Default sharing link type", "Storage limit (if manual mode)", "Conditional Access policy (if set)"),
			},
			Callout: "📌 Always confirm you're looking at the correct site before making changes!",
			Notes:   "The site details panel provides General, Membership, and Settings tabs. This is where admins check and manage site-level properties.",
		},
		{
			Kind:  KindCards,
			Title: "Day-to-Day Site Admin Operations",
			Items: []Item{
				card("👥 Membership / Site Admins", "Add or remove additional site admins for break-glass access. Common when site owners leave or need a backup admin."),
				card("🙋 Access Requests", "Verify whether access requests are enabled and who receives them. Route requests to the right person to avoid bottlenecks."),
				card("🗑️ Recycle Bin Recovery", "Restore deleted files or pages when users make mistakes. Two-stage recycle bin: site-level → site collection-level."),
				card("🔍 Monthly Access Review", "Review who has access on a regular cadence (monthly recommended). Check Owners/Members/Visitors + Activity signals."),
			},
			Notes: "Common quick-win tasks: membership changes, access requests, recycle bin recovery. These are the 'small but urgent' issues admins handle daily.",
		},
		section("Storage Management", "Understanding tenant pool vs per-site quotas", "📦",
			"Transition to storage management."),
		{
			Kind:  KindColumns,
			Title: "Storage Controls: Two Models",
			Items: []Item{
				column("🔄 Automatic (Pooled)", "",
					"Default for most tenants", "Storage shared across all sites", "SharePoint manages allocation", "No per-site limits to configure", "Simple but less granular control"),
				column("⚙️ Manual (Per-Site Limits)", "",
					"Admin sets max GB per site", "Storage warnings configurable", "More granular governance", "Requires ongoing management", "Useful for large organisations"),
			},
			Callout: "📏 Total tenant storage = 1 TB base + 10 GB × number of licensed users  |  Max per site = 25 TB",
			Notes:   "Two models: Automatic (pooled) vs Manual (per-site limits). Most tenants default to Automatic. Changing this is Trainer-only in our lab.",
		},
		section("Site Lifecycle", "Delete, restore, and the safety model", "♻️",
			"Transition to delete and restore."),
		{
			Kind:  KindSteps,
			Title: "Site Delete & Restore — Safety Model",
			Items: []Item{
				step("1", "Active Site", "Site is live and accessible to users"),
				step("2", "Delete", "Admin deletes from Active sites list"),
				step("3", "Deleted Sites", "Recoverable for ~93 days from Deleted sites"),
				step("4", "Restore / Purge", "Restore to Active sites or permanently delete"),
			},
			Bullets: []string{
				"🚫 Do NOT delete the organization's root site",
				"🚫 Do NOT delete any site you do not own",
				"✅ Use a dedicated NW-Pxx-RestoreTest site for the delete/restore drill",
			},
			Notes: "Deleting a site removes access. It goes to Deleted sites for ~93 days. After that, it's permanently deleted. Emphasize using a test site for the drill.",
		},
		{
			Kind:  KindColumns,
			Title: "Recycle Bin — Two-Stage Recovery",
			Items: []Item{
				column("🗑️ First Stage (Site Recycle Bin)", "",
					"Accessible by site users and admins", "Deleted files, pages, list items", "Items stay for 93 days (total for both stages)", "Users can self-service restore"),
				column("🗑️ Second Stage (Site Collection)", "",
					"Only accessible by site collection admins", "Items deleted from first-stage recycle bin", "Last chance before permanent deletion", "Admin recovery only (not self-service)"),
			},
			Callout: "⏱️ Total retention: 93 days across both stages. After 93 days, items are permanently deleted.",
			Notes:   "Two-stage recycle bin: First stage (site level, user-accessible) → Second stage (site collection level, admin-accessible). Items auto-purge after 93 days total.",
		},
		section("PowerShell for Site Admin", "Connect, inspect, and manage sites via command line", "💻",
			"Transition to PowerShell basics for site inspection."),
		{
			Kind:  KindSteps,
			Title: "PowerShell Basics — Connect & Inspect",
			Items: []Item{
				step("Step 1", "Connect to SharePoint Online", "Connect-SPOService -Url https://contoso-admin.sharepoint.com\nUses your admin credentials to connect to the SP admin service."),
				step("Step 2", "List/Get Site Properties", "Get-SPOSite -Identity https://contoso.sharepoint.com/sites/NW-P01-ProjectSite\nRetrieves details for a specific site: URL, owner, storage, template."),
				step("Step 3", "Get All Sites (use with caution)", "Get-SPOSite -Limit All | Select-Object Url, Owner, StorageUsageCurrent\nLists all sites. In shared tenant, just look — don't change."),
			},
			Callout: "⚠️ In this course: read-only commands only. Target only YOUR NW-Pxx-... sites. Never run Set/Remove on other participants' sites.",
			Notes:   "Show the essential workflow: Install module → Connect → Get sites. Emphasize read-only commands first, target only own sites.",
		},
		{
			Kind:  KindTable,
			Title: "Key PowerShell Cmdlets — Quick Reference",
			Table: table([]string{"Cmdlet", "Purpose", "Notes"},
				row("Connect-SPOService", "Connect to SharePoint admin service", "Required before any other cmdlet"),
				row("Get-SPOSite", "Retrieve site properties", "Read-only; safe to run"),
				row("New-SPOSite", "Create a new site (classic)", "Modern sites: use admin center"),
				row("Set-SPOSite", "Modify site properties", "⚠️ Use carefully in shared tenant"),
				row("Remove-SPOSite", "Delete a site", "⚠️ Lab: only NW-Pxx-RestoreTest"),
				row("Restore-SPODeletedSite", "Restore from Deleted sites", "Restores within 93-day window"),
			),
			Notes: "Quick reference of key cmdlets for site lifecycle management.",
		},
		{
			Kind:  KindCards,
			Title: "Site Governance Best Practices",
			Items: []Item{
				card("📛 Naming Convention", "Enforce consistent naming (e.g., NW-Dept-Purpose) for discoverability and admin efficiency"),
				card("👤 Ownership Policy", "Every site MUST have at least 2 owners. Orphan sites are a governance risk"),
				card("📦 Storage Monitoring", "Review storage trends monthly. Set alerts before sites hit limits"),
				card("🔐 Sharing Posture", "Set site-level sharing tighter than org default for sensitive content"),
				card("🗑️ Lifecycle Policy", "Define when inactive sites should be archived or deleted. Use activity signals"),
				card("📋 Regular Access Reviews", "Review site membership monthly. Remove stale access. Document findings"),
			},
			Notes: "Share governance best practices that connect modules 1-3 together.",
		},
		{
			Kind:  KindBullets,
			Title: "🏢 Lab Scenario & Shared Tenant Rules",
			Bullets: []string{
				"Scenario: Project Northwind Intranet Modernization",
				"Create your own practice sites using NW-Pxx-... naming only",
				"Persistent site: NW-Pxx-ProjectSite (keep this for later modules)",
				"Disposable site: NW-Pxx-RestoreTest (for delete/restore drill)",
				"Tenant-wide changes (e.g., storage mode) are TRAINER-ONLY",
				"PowerShell: read-only commands; target only YOUR sites",
			},
			Callout: "🔒 NW-Pxx-ProjectSite is your foundation for Modules 4–8. Don't delete it!",
			Notes:   "Remind participants about shared-tenant rules for this module's lab.",
		},
		{
			Kind:  KindSteps,
			Title: "🔬 Lab 3 Preview — Managing Site Collections",
			Items: []Item{
				step("Task 1", "Create NW-Pxx-ProjectSite", "Your persistent practice site for the rest of the course"),
				step("Task 2", "Explore site details panel", "Capture owner, membership, activity, storage observations"),
				step("Task 3", "Check access request settings", "Observe who receives requests; document findings"),
				step("Task 4", "Monthly access review drill", "Review site membership and document gaps"),
				step("Task 5", "Recycle bin restore drill", "Delete a test file then restore it from recycle bin"),
				step("Task 6", "Delete/restore test site", "Create NW-Pxx-RestoreTest → delete → restore"),
				step("Task 7", "PowerShell connection", "Connect-SPOService + Get-SPOSite on your site"),
			},
			Callout: "📸 Capture screenshots: site details, access review notes, recycle bin restore, PowerShell output.",
			Notes:   "Walk through the lab tasks. This is the busiest lab so far — 7 tasks.",
		},
		bullets("📝 Module 3 Summary",
			"Recap key messages from Module 3.",
			"SharePoint sites are the primary manageable unit — each has URL, owners, permissions, storage",
			"Team Sites = collaboration (M365 Group-backed); Communication Sites = broadcasting",
			"Hub Sites organise sites with shared navigation, branding, and search — without changing permissions",
			"Sites are created from the admin center or PowerShell; always follow naming conventions",
			"Day-to-day ops: membership, access requests, recycle bin (two-stage recovery)",
			"Storage: tenant pool (automatic) vs per-site limits (manual) — know which mode you're in",
			"Delete/restore has a 93-day safety window — always use a test site for drills",
			"PowerShell: Connect-SPOService → Get-SPOSite — start with read-only",
		),
		{
			Kind:     KindCards,
			Title:    "Day 1 Complete!",
			Subtitle: "Tenant Foundations & Site Management",
			Items: []Item{
				card("Module 1", "Microsoft 365 & SharePoint Online overview, admin centers, service limits"),
				card("Module 2", "Identity, access, external sharing, guest access, Conditional Access"),
				card("Module 3", "Site types, creation, management, storage, lifecycle, PowerShell"),
			},
			Callout: "🚀 Tomorrow: Permissions, Metadata, Search & Customization (Day 2)",
			Notes:   "This is the last module of Day 1. Recap what was covered across all 3 modules.",
		},
		{
			Kind:  KindQuiz,
			Title: "🧠 Knowledge Check",
			Items: []Item{
				qa("Why do we isolate work to NW-Pxx-... sites in this course?", "Prevent collisions; avoid impacting other participants in shared tenant"),
				qa("When can you set a per-site storage limit?", "Only when the tenant storage management mode is set to Manual"),
				qa("Why use a dedicated NW-Pxx-RestoreTest site for the delete drill?", "Avoid damaging the persistent practice site; avoid impacting others"),
				qa("What must happen before running Get-SPOSite?", "You must first connect via Connect-SPOService with the admin URL"),
			},
			Callout: "💬 Discuss with your neighbour — then we'll share answers.",
			Notes:   "Discussion slide. Keep answers short; prioritize scope and safety.",
		},
		closing("Thank You!",
			"End of Day 1 — See you tomorrow for Day 2!",
			"Thank participants for Day 1. Preview Day 2 topics.",
			"Day 2: Permissions · Metadata · Search · Customization",
		),
	},
)
