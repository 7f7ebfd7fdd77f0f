package content

var module02 = moduleDeck(2,
	"Identity, Access & External Sharing",
	"Day 1  ·  Tenant Foundations & Site Management",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "🔐  Securing collaboration through identity & policy layers",
			Notes:    "Welcome to Module 2. This module bridges identity fundamentals with SharePoint sharing controls.",
		},
		agenda("📋  Module 2 Agenda",
			"Walk through the topics. Emphasize that many 'SharePoint issues' are identity issues.",
			"Why Identity Matters — Background for SPO admins",
			"Microsoft Entra ID Fundamentals — The identity backbone",
			"Zero Trust & Least Privilege — Security principles",
			"Admin Roles vs SharePoint Permissions — Know the difference",
			"External Sharing Model — Org-level & site-level controls",
			"Guest Access (B2B) — Lifecycle & troubleshooting",
			"Conditional Access — Overview for SPO admins",
			"Lab 2 Preview & Knowledge Check",
		),
		bullets("🎯  Module Objectives",
			"Review learning objectives. These are what participants will be assessed on.",
			"Explain Microsoft Entra ID fundamentals relevant to SharePoint Online",
			"Distinguish admin roles (tenant) from SharePoint permissions (site)",
			"Describe guest access (B2B collaboration) and how it interacts with SharePoint sharing",
			"Identify and apply the correct external sharing control at the correct scope (org vs site)",
			"Explain Conditional Access at a high level and how it impacts SharePoint access",
		),
		section("Why Identity Matters", "The foundation that every SharePoint admin must understand", "🔐",
			"Transition to the background/overview section on identity."),
		{
			Kind:  KindCards,
			Title: "The Modern Identity Challenge",
			Intro: "In today's work environment, collaboration crosses organisational boundaries. Identity management is now the primary security perimeter — not the network firewall.",
			Items: []Item{
				card("👤  Internal Users", "Full-time employees, contractors with corporate accounts"),
				card("🤝  External Partners", "Vendors, clients, consultants needing project access"),
				card("📱  Multiple Devices", "Corporate laptops, personal phones, shared kiosks"),
				card("⚖️  Compliance", "Data protection, retention, regulatory requirements"),
			},
			Callout: "🔑 Key Insight: Many 'SharePoint access problems' are actually identity & policy problems originating in Microsoft Entra ID, not in SharePoint itself.",
			Notes:   "Set the business context. Modern collaboration means internal + external users, multiple devices, and compliance obligations. Identity is the perimeter.",
		},
		{
			Kind:  KindSteps,
			Title: "How Access Decisions Are Made",
			Intro: "When a user tries to access a SharePoint resource, multiple layers are evaluated:",
			Items: []Item{
				step("1", "Authentication", "User signs in via Microsoft Entra ID"),
				step("2", "Policy Evaluation", "Conditional Access, MFA, device compliance"),
				step("3", "Tenant Sharing", "Org-level SharePoint sharing settings"),
				step("4", "Site Sharing", "Site-level sharing configuration"),
				step("5", "Permissions", "SharePoint groups & permission levels"),
			},
			Callout: "🚫 If ANY layer blocks access, the user is denied — even if SharePoint permissions look correct.",
			Notes:   "Show the logical flow: user authenticates via Entra ID → policies are evaluated (Conditional Access, MFA, device) → SharePoint checks tenant sharing → site sharing → permissions.",
		},
		{
			Kind:  KindCards,
			Title: "Zero Trust: The Security Foundation",
			Intro: "Microsoft 365 security is built on Zero Trust principles — never trust, always verify.",
			Items: []Item{
				card("Verify Explicitly", "Always authenticate and authorize based on all available data: identity, location, device, service, data classification, anomalies."),
				card("Least Privilege Access", "Limit user access with just-in-time and just-enough-access (JIT/JEA), risk-based adaptive policies, and data protection."),
				card("Assume Breach", "Minimize blast radius and segment access. Verify end-to-end encryption. Use analytics to detect threats, improve defenses."),
			},
			Callout: "💡 As a SharePoint admin, you operate inside this model — your policies should align with these principles.",
			Notes:   "Introduce Zero Trust as the guiding security philosophy. Microsoft 365 (and thus SharePoint) operates on these principles.",
		},
		section("Microsoft Entra ID Fundamentals", "The identity backbone of Microsoft 365", "🆔",
			"Transition to Entra ID fundamentals."),
		{
			Kind:  KindTable,
			Title: "Microsoft Entra ID — What SharePoint Admins Need to Know",
			Table: table([]string{"Capability", "What it covers", "SPO relevance"},
				row("🔐 Authentication", "Users sign in via Entra ID — MFA, passwordless, SSO", "Every SharePoint access starts with an Entra ID sign-in"),
				row("📋 Directory", "Users, groups, guest accounts, app registrations", "This is where members and guests are managed"),
				row("🛡️ Policies", "Conditional Access, external collaboration settings", "Controls WHO can access WHAT, from WHERE, on WHICH device"),
				row("👥 Groups", "Microsoft 365 Groups, Security Groups, Distribution Lists", "M365 Groups power Teams-connected SharePoint sites"),
			),
			Notes: "Entra ID (formerly Azure AD) is the cloud identity service. It handles authentication, directory, and policy enforcement for all M365 services.",
		},
		{
			Kind:  KindColumns,
			Title: "Member vs Guest Users",
			Items: []Item{
				column("👤 Member (Internal)", "",
					"Full user in your directory", "Corporate email & license", "Full directory browsing by default", "Full access to licensed services", "Managed by HR / IT provisioning"),
				column("🤝 Guest (External / B2B)", "",
					"External user invited to your directory", "Uses their own email / identity", "Limited directory visibility", "Access scoped to invited resources", "Managed via Entra external settings"),
			},
			Callout: "⚠️ Guest access depends on: Entra collaboration settings + SharePoint org sharing + Site sharing + Permissions",
			Notes:   "Members = internal users with full directory privileges. Guests = external B2B users with limited directory access. Guest behaviour is shaped by both Entra AND SharePoint settings.",
		},
		section("Admin Roles vs Site Permissions", "Two different scopes — don't confuse them", "⚙️",
			"Transition to the roles vs permissions section."),
		{
			Kind:  KindCards,
			Title: "Tenant Admin Roles (Directory Level)",
			Items: []Item{
				card("Global Administrator", "Full access to all admin centers and settings — use sparingly"),
				card("SharePoint Administrator", "Manages SharePoint admin center, all sites, tenant policies"),
				card("Teams Administrator", "Manages Teams settings; affects Teams-connected SP sites"),
				card("Exchange Administrator", "Manages Exchange; relevant for mail-enabled groups"),
				card("Compliance Administrator", "Manages Purview policies affecting SP content"),
			},
			Callout: "🔑 Principle: Use least privilege. Avoid Global Admin for day-to-day SharePoint work.",
			Notes:   "Admin roles grant access to admin centers and tenant-wide config. Being a SP Admin does NOT make you a site owner, and vice versa.",
		},
		{
			Kind:  KindColumns,
			Title: "SharePoint Permissions (Site-Scoped)",
			Items: []Item{
				column("🔑 Site Owners", "", "Full control within the site", "Manage permissions, settings, pages", "NOT necessarily a tenant admin"),
				column("✏️ Site Members", "", "Contribute content (add, edit, delete)", "Collaborate on documents", "Cannot change site settings"),
				column("👁️ Site Visitors", "", "View/read content only", "Cannot edit or upload", "Ideal for stakeholders/readers"),
			},
			Callout: "⚡ Key Distinction: Tenant admin role ≠ Site owner  |  Site owner ≠ Tenant admin  |  Assign only what's needed",
			Notes:   "SharePoint permissions control what users can do INSIDE a specific site. Default groups: Owners, Members, Visitors.",
		},
		section("External Sharing Model", "The multi-layer control stack for secure collaboration", "🤝",
			"Transition to external sharing model."),
		{
			Kind:  KindSteps,
			Title: "The External Sharing Control Stack",
			Items: []Item{
				step("Layer 1", "Entra External Collaboration  ·  📌 Broadest scope", "Who can invite guests? Guest invitation restrictions. Cross-tenant access policies."),
				step("Layer 2", "Org-Level Sharing (SPO Admin Center)  ·  📌 Tenant baseline", "Tenant-wide baseline for SharePoint + OneDrive. OneDrive ≤ SharePoint (never more permissive). Anyone / New+Existing / Existing / Only org."),
				step("Layer 3", "Site-Level Sharing  ·  📌 Most specific", "Per-site override (same or MORE restrictive). Scoped to individual site collections. Ideal for extranet / project sites."),
			},
			Callout: "⚠️ Golden Rule: A site-level sharing setting can NEVER be more permissive than the org-level setting.",
			Notes:   "Three layers: Entra collaboration settings → Org-level SharePoint sharing → Site-level sharing. Site can NEVER be more permissive than org level.",
		},
		{
			Kind:  KindTable,
			Title: "Sharing Levels — Most to Least Permissive",
			Table: table([]string{"Level", "Behaviour", "Posture"},
				row("🌐 Anyone", "Anonymous links — no sign-in required. Riskiest option; use with caution", "MOST PERMISSIVE"),
				row("🤝 New & Existing Guests", "Guests must authenticate (sign-in). New guests can be invited", "RECOMMENDED"),
				row("👤 Existing Guests Only", "Only guests already in the directory. No new invitations via sharing", "RESTRICTIVE"),
				row("🏢 Only People in Your Org", "No external sharing at all. Internal collaboration only", "MOST RESTRICTIVE"),
			),
			Notes: "Walk through the 4 sharing levels from most to least permissive. Advise against 'Anyone' unless deliberately accepted.",
		},
		{
			Kind:  KindColumns,
			Title: "SharePoint ↔ OneDrive Sharing Relationship",
			Items: []Item{
				column("📄 SharePoint Online Sharing", "",
					"Sets the MAXIMUM permissiveness", "Controls the sharing ceiling", "All 4 levels available", "Configured in: SP admin center → Policies → Sharing"),
				column("☁️ OneDrive Sharing", "",
					"CANNOT exceed SharePoint level", "Same or more restrictive", "Personal file sharing scope", "Configured in: SP admin center → Policies → Sharing"),
			},
			Callout: "📌 Rule: SharePoint sharing level ≥ OneDrive sharing level ≥ Site-level sharing",
			Notes:   "OneDrive sharing can never be more permissive than SharePoint sharing. Both are controlled from the SharePoint admin center.",
		},
		section("Guest Access (B2B Collaboration)", "Lifecycle, common pitfalls, and troubleshooting", "🧳",
			"Transition to guest access lifecycle."),
		{
			Kind:  KindSteps,
			Title: "Guest User Lifecycle",
			Items: []Item{
				step("1", "Invite", "Admin or user invites an external user via email or sharing link"),
				step("2", "Redeem", "Guest clicks the link and authenticates with their identity"),
				step("3", "Access", "Guest accesses the shared resource based on permissions granted"),
				step("4", "Review / Remove", "Admin reviews guest access periodically and removes if needed"),
			},
			Notes: "Guest lifecycle: invite → redeem → access. Invitation state matters! If a guest hasn't redeemed, they can't access resources.",
		},
		{
			Kind:  KindCards,
			Title: "🔧 Top 5 Guest Access Failure Causes",
			Items: []Item{
				card("Org-level sharing is too restrictive", "Tenant blocks guests entirely or limits to existing only"),
				card("Site-level sharing is more restrictive", "Site overrides org baseline with tighter settings"),
				card("Guest hasn't redeemed the invitation", "Invitation pending — guest never clicked the link"),
				card("M365 Group / Teams guest settings conflict", "Group-connected site respects Teams guest policies"),
				card("Conditional Access blocks the guest", "Device compliance or location policy prevents access"),
			},
			Callout: "💡 Troubleshooting tip: Check layers from top (Entra) to bottom (site permissions).",
			Notes:   "Walk through the top 5 causes of 'guest can't access' issues. This is the most common support scenario for SharePoint admins.",
		},
		section("Conditional Access", "Identity-driven policy enforcement for SharePoint", "🛡️",
			"Transition to Conditional Access overview."),
		{
			Kind:  KindCards,
			Title: "Conditional Access — How It Affects SharePoint",
			Intro: "Conditional Access evaluates signals and enforces access decisions in real-time:",
			Items: []Item{
				card("👤 User / Risk", "Who is signing in? User risk level. Group membership"),
				card("📱 Device", "Is the device compliant? Managed vs unmanaged. OS platform"),
				card("📍 Location", "Where is the request from? Trusted vs unknown network. Country/region"),
				card("🔐 Auth Strength", "MFA required? Passwordless? Phishing-resistant?"),
			},
			Callout: "Possible outcomes:  ✅ Allow access  ·  🔐 Require MFA  ·  📱 Require compliant device  ·  🚫 Block access",
			Notes:   "CA is NOT a SharePoint feature — it's an Entra ID feature that affects SharePoint. Explain common signals: user risk, device compliance, location, auth strength.",
		},
		{
			Kind:  KindBullets,
			Title: "🏢 Lab Scenario & Shared Tenant Rules",
			Bullets: []string{
				"Scenario: Project Northwind — Fabrikam is the external partner",
				"Tenant-wide policy changes are TRAINER-ONLY in this module",
				"Participant hands-on work is scoped to participant-isolated practice sites",
				"Use your Participant ID (P01–P10) with NW-Pxx-... naming",
				"Trainer has pre-provisioned a test guest user for the exercise",
			},
			Callout: "🔒 Shared tenant = be careful. Org-level sharing changes affect ALL participants.",
			Notes:   "Remind participants about shared-tenant rules for this module's lab.",
		},
		{
			Kind:  KindSteps,
			Title: "🔬 Lab 2 Preview — Configuring Secure Access",
			Items: []Item{
				step("Task 1", "Review org-level sharing settings", "Observe (Trainer-only changes) — document current baseline"),
				step("Task 2", "Configure site-level sharing", "Set sharing on your NW-Pxx-ProjectSite to 'Existing guests only'"),
				step("Task 3", "Verify guest account status", "Check the trainer-provisioned guest in Entra ID — Pending vs Accepted"),
				step("Task 4", "Review admin roles vs site permissions", "Compare your SP Admin role access to your site owner permissions"),
			},
			Callout: "📸 Capture: org sharing level, site sharing config, guest invite status, role vs permission comparison.",
			Notes:   "Explain lab tasks. Participants will observe org-level, configure site-level, verify guest status, and review admin roles vs site permissions.",
		},
		bullets("📝 Module 2 Summary",
			"Recap the key messages before knowledge check.",
			"Identity (Entra ID) is the foundation — many 'SharePoint problems' are identity problems",
			"Admin roles (tenant) ≠ Site permissions (resource) — use least privilege",
			"External sharing has 3 layers: Entra → Org-level → Site-level (each constrains the next)",
			"OneDrive sharing ≤ SharePoint sharing — always",
			"Guest lifecycle: Invite → Redeem → Access → Review — check invitation status when troubleshooting",
			"Conditional Access adds context-aware enforcement (MFA, device, location, risk)",
		),
		{
			Kind:  KindQuiz,
			Title: "🧠 Knowledge Check",
			Items: []Item{
				qa("What is the difference between a SharePoint Administrator role and a site owner?", "Admin role → admin center/tenant; Site owner → permissions within a specific site"),
				qa("Why can a site-level sharing setting never be more permissive than org-level?", "Org-level is the tenant baseline/ceiling; sites inherit that maximum"),
				qa("Name two common causes of guest access failures.", "Org sharing disabled; invitation not redeemed; CA blocks; site sharing too restrictive"),
				qa("What is Conditional Access trying to accomplish?", "Enforce access requirements based on identity and context (device, location, risk)"),
			},
			Callout: "💬 Discuss with your neighbour — then we'll share answers.",
			Notes:   "Use as discussion slide. Encourage short answers. Focus on scope and troubleshooting logic.",
		},
	},
)
