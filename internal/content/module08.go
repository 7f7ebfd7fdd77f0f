package content

var module08 = moduleDeck(8,
	"Content Governance & Compliance with Microsoft Purview",
	"Scenario: Project Northwind Intranet Modernization  ·  Day 3 of 3",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Retention  ·  Sensitivity labels  ·  eDiscovery  ·  DLP",
			Notes:    "Welcome to Day 3. Module 8 introduces Microsoft Purview governance features that SharePoint admins need to understand: retention, sensitivity labels, eDiscovery, and DLP. Many of these settings are tenant-wide — we'll stress safety.",
		},
		{
			Kind:  KindCards,
			Title: "Why SharePoint Admins Care About Compliance",
			Items: []Item{
				card("Tenant-Wide Impact", "Compliance policies often apply across the entire tenant — one mistake affects everyone."),
				card("⚖️ Regulatory Requirements", "Retention, classification, and eDiscovery are required by law in many industries."),
				card("🛡️ Data Protection", "Sensitivity labels and DLP prevent accidental sharing of confidential content."),
				card("⚠️ Shared Tenant Safety", "In training, the trainer leads policy creation. Participants observe first."),
			},
			Notes: "Set the tone: compliance features are powerful but potentially disruptive. In shared training tenants, the trainer leads policy creation while participants observe. In production, always pilot before rolling out broadly.",
		},
		bullets("Learning Outcomes",
			"Five learning outcomes covering the four Purview pillars for this module: retention, sensitivity labels, eDiscovery, and DLP.",
			"Describe what Microsoft Purview is used for in Microsoft 365",
			"Explain retention labels, policies, and where they apply",
			"Explain sensitivity labels and label publishing policies",
			"Describe the modern eDiscovery workflow (cases, holds, searches)",
			"Explain why DLP is deployed using simulation and pilots",
		),
		{
			Kind:  KindCards,
			Title: "Microsoft Purview: The Four Pillars (Module 8)",
			Items: []Item{
				card("🗄️ Retention", "Data lifecycle & records management"),
				card("🏷️ Sensitivity Labels", "Classification + protection"),
				card("eDiscovery", "Cases, searches, holds, export"),
				card("🛡️ DLP", "Data loss prevention simulation-first"),
			},
			Notes: "Microsoft Purview is the unified governance and compliance portal. In Module 8 we focus on these four pillars. Each has admin implications for SharePoint and OneDrive content management.",
		},
		section("Retention: Policies and Labels", "Section 1", "🗄️",
			"Transition to retention."),
		{
			Kind:  KindColumns,
			Title: "Retention Policies vs Retention Labels",
			Items: []Item{
				column("Retention Policies (Broad)", "",
					"Apply to locations (SPO, OneDrive, Exchange…)", "Retain and/or delete content at scale", "Used for baseline governance",
					"Applied automatically — no user interaction", "Cannot mark items as records"),
				column("Retention Labels (Item-Level)", "",
					"Applied at the document/email level", "Only ONE retention label per item", "Must be published via label policies first",
					"Users can apply manually", "Can mark items as records"),
			},
			Notes: "Key distinction: policies target locations broadly, labels target individual items. From Microsoft docs: 'An item can have only one retention label applied at a time.' Both can be used together — they complement each other for a comprehensive strategy.",
		},
		{
			Kind:  KindTable,
			Title: "Retention: Capabilities Comparison",
			Table: table([]string{"Capability", "Policy", "Label"},
				row("Retain and/or delete", "✅", "✅"),
				row("Applied automatically", "✅", "✅"),
				row("User can apply manually", "❌", "✅"),
				row("Mark item as a record", "❌", "✅"),
				row("Start period from event", "❌", "✅"),
				row("Disposition review", "❌", "✅"),
				row("Persists if content moved", "❌", "✅ (within M365)"),
			),
			Notes: "Table sourced from Microsoft Learn: retention policies vs labels capabilities comparison. Key differences: labels support records management, disposition review, and event-based retention. Policies are simpler and best for broad baseline governance.",
		},
		{
			Kind:  KindSteps,
			Title: "Publishing Retention Labels: The Path",
			Intro: "Creating a label ≠ making it available. You must publish via a label policy.",
			Items: []Item{
				step("1", "Create Label", "Purview portal → Solutions → Records Mgmt or Data Lifecycle Mgmt → Labels"),
				step("2", "Create Label Policy", "Solutions → Records Mgmt or Data Lifecycle Mgmt → Policies → Label policies"),
				step("3", "Choose Locations", "SharePoint sites, OneDrive accounts, Exchange mailboxes, M365 Groups"),
				step("4", "Wait for Replication", "SPO / OneDrive: typically within 1 day (allow up to 7 days)"),
			},
			Notes: "Four-step publishing flow. Emphasize step 4: replication delay. From Microsoft docs: 'When retention labels are published to SharePoint or OneDrive, those labels typically appear for users to select within one day. However, allow up to seven days.' In a training environment, pre-publish labels the day before if possible.",
		},
		{
			Kind:  KindBullets,
			Title: "Retention Label Timing: Plan for It",
			Intro: "⏱️  Published retention labels to SharePoint / OneDrive typically appear within 1 day. Allow up to 7 days for full replication. Exchange labels run on a 7-day process cycle.",
			Bullets: []string{
				"Check label policy Status in the Purview portal (look for 'Error')",
				"Use Set-RetentionCompliancePolicy -RetryDistribution (PowerShell)",
				"Verify the label policy includes the correct locations",
				"Confirm the user has permissions to the target library/site",
			},
			Callout: "What If Labels Don't Appear?  Work through the checks above in order.",
			Notes:   "Replication timing is a common source of frustration. From Microsoft docs: if labels don't appear after 7 days, check the policy status. If you see '(Error)', run Set-RetentionCompliancePolicy -RetryDistribution via PowerShell.",
		},
		section("Sensitivity Labels: Classification + Protection", "Section 2", "🏷️",
			"Transition to sensitivity labels."),
		{
			Kind:     KindCards,
			Title:    "Sensitivity Labels: What They Do",
			Subtitle: "Classify and optionally protect content across Microsoft 365",
			Items: []Item{
				card("🏷️ Classification", "Visual markings: headers, footers, watermarks"),
				card("Encryption", "Restrict who can access and what actions they can perform"),
				card("Scope", "Files, emails, meetings, Teams, Groups, SharePoint sites"),
				card("Persistence", "Label travels with the content — even when shared externally"),
			},
			Notes: "Sensitivity labels are different from retention labels: they classify and protect content. Labels support visual markings, encryption, and scope across files/emails/meetings/sites. Key difference from retention: sensitivity labels persist with content when shared externally.",
		},
		{
			Kind:  KindTable,
			Title: "Sensitivity vs Retention Labels: Key Differences",
			Table: table([]string{"Aspect", "Retention Labels", "Sensitivity Labels"},
				row("Purpose", "Keep / delete content", "Classify / protect content"),
				row("Published to…", "Locations (sites, mailboxes)", "Users and groups"),
				row("Persists externally?", "No (within M365 only)", "Yes (travels with content)"),
				row("Can apply encryption?", "No", "Yes"),
				row("Items per document", "1 retention label", "1 sensitivity label"),
				row("Visual markings?", "No", "Yes (header/footer/watermark)"),
			),
			Notes: "Critical comparison. Participants often confuse retention and sensitivity labels. Retention = lifecycle (keep/delete). Sensitivity = classification + protection. A document can have BOTH one retention label AND one sensitivity label simultaneously.",
		},
		{
			Kind:  KindSteps,
			Title: "Sensitivity Labels: Create and Publish",
			Items: []Item{
				step("1", "Create the label", "Purview portal → Solutions → Information Protection → Sensitivity labels → + Create a label"),
				step("2", "Define scope", "Files & data assets, Emails, Meetings, Groups & sites — choose what applies"),
				step("3", "Configure settings", "Visual markings (header/footer/watermark), encryption, access controls"),
				step("4", "Create publishing policy", "Solutions → Information Protection → Publishing policies → select labels + users/groups"),
				step("5", "Wait & validate", "Allow replication time (~1 hour minimum). Pilot with test users first."),
			},
			Notes: "Five-step process. Note that sensitivity labels are published to USERS and GROUPS, not locations like retention labels. From Microsoft docs: 'Publish new labels to just a few test users first, wait for at least one hour, then verify the label behavior on SharePoint and OneDrive.' For training, avoid encryption complexity unless the tenant is pre-configured.",
		},
		{
			Kind:  KindSteps,
			Title: "Sensitivity Labels: Timing and Pilot-First Approach",
			Intro: "Recommended Rollout Strategy:",
			Items: []Item{
				step("Phase 1", "Pilot (few users)", "Publish to test group. Validate in SPO/OneDrive. Wait ≥ 1 hour"),
				step("Phase 2", "Expand", "Add more users to publishing policy. Monitor audit logs"),
				step("Phase 3", "Broad rollout", "Make available to all standard users. Labels fully synced"),
			},
			Notes: "From Microsoft docs: 'Publish new labels to just a few test users first, wait for at least one hour, then verify the label behavior on SharePoint and OneDrive. Wait at least a day before making the label available to more users.' Always pilot before broad rollout.",
		},
		section("eDiscovery: Modern Experience", "Section 3", "🔎",
			"Transition to eDiscovery."),
		{
			Kind:  KindCards,
			Title: "eDiscovery: What It Is and Why Admins Care",
			Intro: "eDiscovery helps organizations identify, preserve, and export content as evidence for legal and regulatory matters.",
			Items: []Item{
				card("Case", "Container for an investigation — scopes all activities"),
				card("Hold", "Preserves content so it can't be permanently deleted"),
				card("Search", "Finds relevant content across SharePoint, OneDrive, Exchange"),
				card("Export", "Produces deliverables for legal / compliance workflows"),
			},
			Notes: "Four building blocks of the eDiscovery workflow. Case is the container, Hold preserves content, Search finds it, and Export produces it for legal teams. Classic eDiscovery experiences have been retired — use the modern experience in the Purview portal.",
		},
		{
			Kind:  KindSteps,
			Title: "eDiscovery Workflow (Modern Experience)",
			Items: []Item{
				step("1", "Create a Case", "Define investigation scope and name"),
				step("2", "Add Members", "Assign roles: eDiscovery Manager or eDiscovery Administrator"),
				step("3", "Place Content on Hold", "Preserve data in SharePoint, OneDrive, Exchange (optional)"),
				step("4", "Run Search", "Use keywords, date ranges, location filters to find content"),
				step("5", "Review and Export", "Review results, then export for legal / compliance teams"),
			},
			Notes: "Five-step workflow. Note that Hold is optional but recommended when preservation is critical. Classic eDiscovery has been retired per Microsoft guidance. eDiscovery permissions are separate — eDiscovery Manager role is needed.",
		},
		{
			Kind:  KindBullets,
			Title: "eDiscovery: 2026 Alignment & Shared Tenant Safety",
			Intro: "⚠️  Classic eDiscovery experiences have been retired (per Microsoft guidance). Use the modern eDiscovery experience in the Microsoft Purview portal.",
			Bullets: []string{
				"Default: trainer-led demonstration (participants observe)",
				"Hands-on only if eDiscovery permissions are explicitly assigned",
				"Always scope searches and holds to NW-Pxx locations only",
				"Never place holds on other participants' content",
				"Treat eDiscovery as a privileged governance activity",
			},
			Notes: "Very important safety slide. eDiscovery is powerful — participants must not search or hold content outside their own NW-Pxx sites. In a shared training tenant, default to trainer-led demo. Hands-on only if the trainer explicitly assigns eDiscovery Manager permissions.",
		},
		section("Data Loss Prevention (DLP)", "Section 4", "🛡️",
			"Transition to DLP."),
		{
			Kind:     KindSteps,
			Title:    "DLP: Data Loss Prevention Overview",
			Subtitle: "The #1 Admin Rule: Don't \"turn on and pray\"",
			Intro:    "DLP policies detect and optionally prevent risky actions — such as sharing sensitive content externally (credit cards, SSNs, health records, etc.).",
			Items: []Item{
				step("1", "Define Intent", "What data? From whom? Which locations?"),
				step("2", "Simulation Mode", "Run policy in simulation to understand impact"),
				step("3", "Simulation + Tips", "Show policy tips to users — observe reactions"),
				step("4", "Enforcement", "Enable blocking/restriction after successful pilot"),
			},
			Notes: "Four-phase DLP deployment. From Microsoft docs: 'Make sure you understand the data you're protecting and the goals you want to achieve. Take time to design a policy before you implement it.' Simulation mode is essential — it lets you see what WOULD be flagged without blocking users.",
		},
		{
			Kind:  KindCards,
			Title: "DLP Simulation Mode: How It Works",
			Intro: "Simulation mode runs the policy like a WhatIf — you see results without blocking users.",
			Items: []Item{
				card("See Matched Content", "View which files/emails would trigger the policy rules"),
				card("Refine Rules", "Adjust conditions to reduce false positives before going live"),
				card("Scale Gradually", "Start with one SPO site, then expand to more locations"),
				card("⏱️ Plan Timing", "Simulation can take up to 12 hours to complete"),
			},
			Notes: "From Microsoft docs: 'The simulated deployment runs like the WhatIf parameter for PowerShell, for a specific point in time.' Simulation can take up to 12 hours. Use it to iteratively refine rules and reduce false positives before enforcement.",
		},
		{
			Kind:  KindCards,
			Title: "Admin Governance Mindset: Purview Summary",
			Intro: "Three principles for every Purview feature:",
			Items: []Item{
				card("Pilot First", "Always test with a small group before tenant-wide rollout. Monitor and refine."),
				card("⏱️ Plan for Delays", "Replication takes time. Publish labels/policies well before you need them."),
				card("Least Privilege", "Grant only the permissions needed. eDiscovery roles are powerful — use carefully."),
			},
			Notes: "Three overarching principles applying to all Purview features: pilot first, plan for replication delays, and use least privilege. These apply to retention, sensitivity labels, eDiscovery, and DLP equally.",
		},
		section("Lab 8: Implementing Compliance Controls", "Section 5", "🔬",
			"Transition to the lab."),
		{
			Kind:  KindSteps,
			Title: "Lab 8: Hands-On Exercises",
			Items: []Item{
				step("Task 1", "Upload FAKE content", "Upload sample docs to your NW-Pxx site for labeling"),
				step("Task 2", "Apply sensitivity label", "Apply a published sensitivity label to a document (if available)"),
				step("Task 3", "Apply retention label", "Apply a published retention label to a document (if available)"),
				step("Task 4", "eDiscovery demo", "Trainer-led: walk through Case → Search → Hold workflow"),
				step("Task 5", "DLP awareness", "Trainer-led: review DLP policy creation in simulation mode"),
			},
			Callout: "⚠️  Label availability depends on pre-published policies. Tasks 4-5 are trainer-led by default.",
			Notes:   "Tasks 1-3 are hands-on if labels have been pre-published. Tasks 4-5 are trainer-led demos. Remind participants to use only FAKE sample content — never upload real sensitive data. If labels are not yet visible, explain the replication timing and move to the demo tasks.",
		},
		bullets("Lab 8: Validation Checklist",
			"Six validation checkpoints. The first three depend on label availability. The last three are knowledge checks — every participant should be able to answer these. If labels weren't available, focus discussion on the conceptual differences.",
			"FAKE sample documents uploaded to NW-Pxx document library",
			"Sensitivity label applied to at least one document (if published)",
			"Retention label applied to at least one document (if published)",
			"Can explain the difference between retention and sensitivity labels",
			"Can describe the eDiscovery workflow: Case → Hold → Search → Export",
			"Can explain why DLP should use simulation mode before enforcement",
		),
		bullets("Key Takeaways",
			"Seven key takeaways covering all four Purview pillars. Emphasize: retention ≠ sensitivity labels (different purpose, different publish targets). DLP is the most impactful if mis-configured — simulation mode is not optional, it's essential.",
			"Microsoft Purview is the unified governance + compliance portal for M365",
			"Retention policies target locations broadly; labels target individual items",
			"Retention labels must be published via label policies — plan for replication delays",
			"Sensitivity labels classify + protect; published to users/groups (not locations)",
			"A document can have BOTH one retention label AND one sensitivity label",
			"Classic eDiscovery is retired — use the modern experience in the Purview portal",
			"DLP: always start with simulation mode → pilot → then enforcement",
		),
		{
			Kind:  KindQuiz,
			Title: "Knowledge Check",
			Items: []Item{
				qa("What is the key difference between a retention policy and a retention label?", ""),
				qa("How long can it take for published retention labels to appear in SharePoint?", ""),
				qa("Are sensitivity labels published to locations or to users/groups?", ""),
				qa("What are the four building blocks of the modern eDiscovery workflow?", ""),
				qa("Why should DLP policies start in simulation mode?", ""),
			},
			Notes: "Answers: Q1 — Policies target locations broadly; labels target individual items and support records. Q2 — Typically within 1 day, but allow up to 7 days. Q3 — To users and groups (retention labels are published to locations). Q4 — Case, Hold, Search, Export. Q5 — To understand impact and reduce false positives before blocking users.",
		},
		closing("End of Module 8",
			"Up Next  →  Module 9: OneDrive Administration & Operational Controls",
			"Module 8 complete. Next is Module 9: OneDrive for Business administration. Remind participants that compliance settings take effect over time — encourage them to revisit their labels after the next module.",
		),
	},
)
