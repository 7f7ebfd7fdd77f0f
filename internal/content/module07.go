package content

var module07 = moduleDeck(7,
	"Apps and Customization in SharePoint Online",
	"Scenario: Project Northwind Intranet Modernization  ·  Day 2 of 3",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Out-of-box  ·  JSON formatting  ·  SPFx  ·  API access",
			Notes:    "Module 7 covers the customization spectrum from out-of-box to SPFx, declarative JSON formatting, app governance, and API access. This is the last module of Day 2.",
		},
		{
			Kind:  KindCards,
			Title: "Why Admins Care About Customization",
			Items: []Item{
				card("Productivity", "Customized views and apps can dramatically improve user adoption."),
				card("Security", "Every customization adds a potential attack surface. Govern wisely."),
				card("🛠️ Supportability", "Custom code must be maintainable over time. Prefer low-code first."),
				card("Governance", "Who can deploy what? Tenant-wide vs site-scoped decisions matter."),
			},
			Notes: "Customization is a double-edged sword. It improves productivity but adds risk. Administrators must balance flexibility with governance, security, and long-term supportability.",
		},
		bullets("Learning Outcomes",
			"Four learning outcomes covering the full customization spectrum, from JSON formatting to SPFx governance and API access management.",
			"Explain modern customization models in SharePoint Online",
			"Customize a list safely using JSON-based column and view formatting",
			"Describe how SPFx solutions are deployed and governed",
			"Describe what API access is for and why it matters",
		),
		section("Customization Models in SharePoint Online", "Section 1", "🧩",
			"Transition to the customization models section."),
		{
			Kind:  KindSteps,
			Title: "The Customization Spectrum",
			Items: []Item{
				step("1", "Out-of-Box Configuration  ·  Lowest risk  •  No code", "Settings, web parts, pages, permissions"),
				step("2", "⚙️ Declarative (JSON Formatting)  ·  Low risk  •  JSON only", "Column & view formatting, list form config"),
				step("3", "SharePoint Framework (SPFx)  ·  Highest flexibility  •  Code", "Web parts, extensions, Teams + Viva"),
			},
			Callout: "Flexibility ▼  Risk ▲  ·  Prefer out-of-box first, then JSON formatting, then SPFx",
			Notes:   "Present the spectrum from safest to most flexible. Admin recommendation: prefer out-of-box first, then JSON formatting, and only use SPFx when the other options aren't sufficient.",
		},
		{
			Kind:  KindBullets,
			Title: "Tier 1: Out-of-Box Configuration",
			Bullets: []string{
				"List / library settings (columns, views, content types)",
				"Modern pages and web parts (no code needed)",
				"Permissions, sharing, and governance controls",
				"Hub sites, navigation, site templates",
				"Microsoft Lists templates (Issue Tracker, etc.)",
			},
			Callout: "🎯  Admin Take-Away:  Always prefer out-of-box features first. They are easiest to support and require no code deployment.",
			Notes:   "Out-of-box configuration = zero deployment risk. Covers most standard business needs. Modern pages + web parts give rich layout without custom code. Lists templates provide pre-built structures.",
		},
		{
			Kind:  KindCards,
			Title: "Tier 2: Declarative Customization (JSON Formatting)",
			Intro: "JSON-based formatting changes how lists and libraries are displayed — not the data.",
			Items: []Item{
				card("Column Formatting", "Customize how a single field is rendered in a view"),
				card("View Formatting", "Customize how rows/cards are rendered in the view"),
				card("List Form Configuration", "Customize the item form layout (header/body/footer)"),
			},
			Notes: "Three types of declarative customization. Column formatting targets individual fields. View formatting targets the entire row/card layout. List form configuration targets the item form. All use JSON — no compiled code, no deployment package needed.",
		},
		{
			Kind:  KindSteps,
			Title: "Column Formatting: How It Works",
			Items: []Item{
				step("1", "Open column settings", "Click column header → Column settings → Format this column"),
				step("2", "Pick a rule", "Choose a Conditional Formatting rule (designer) – or switch to Advanced mode"),
				step("3", "Edit JSON", "Paste or write JSON in the Advanced editor"),
				step("4", "Preview", "Click Preview to verify the rendering"),
				step("5", "Save", "Click Save — formatting applies to all users in that view"),
			},
			Callout: "💡 Formatting changes rendering only — the underlying data is unchanged.",
			Notes:   "Walk through the 5-step process. Emphasize that the designer mode (conditional formatting) is the easiest entry point. Advanced mode gives full JSON control. Key point: formatting never modifies data, only visual rendering.",
		},
		{
			Kind:  KindColumns,
			Title: "Column Formatting: JSON Example (Status Field)",
			Items: []Item{
				column("JSON", "",
					`{ "$schema": ".../sp/v2/column-formatting.schema.json",`,
					`  "elmType": "div",`,
					`  "style": { "padding": "4px 8px", "border-radius": "4px",`,
					`    "background-color": { "operator": "?", "operands": [`,
					`      { "operator": "==", "operands": ["[$Status]","Active"] },`,
					`      "#107C10", "#D13438" ] } },`,
					`  "txtContent": "@currentField" }`),
				column("What this does:", "",
					"Renders Status field as a colored badge", "Green (#107C10) if Status = 'Active'", "Red (#D13438) otherwise",
					"Uses the v2 column formatting schema", "No code deployment needed"),
			},
			Notes: "Show a real JSON example. The ternary operator (?) checks the Status field value. This is a great teaching moment: simple conditional logic, no SPFx required. Samples available at github.com/SharePoint/sp-dev-column-formatting. Schema URL: developer.microsoft.com/json-schemas/sp/v2/column-formatting.schema.json",
		},
		{
			Kind:     KindCards,
			Title:    "View Formatting: Customizing Rows & Cards",
			Subtitle: "Format current view → Choose layout → Customize rendering",
			Items: []Item{
				card("List / Compact List", "Default row-based layout. Apply alternating row colors or conditional row styles."),
				card("Gallery", "Card-based layout. Great for visual content like projects or requests."),
				card("Board", "Kanban-style view. Group items by a column (e.g., Status or Priority)."),
			},
			Notes: "Three layout options for view formatting. List is the default table view. Gallery renders cards — great for visual items. Board gives a Kanban experience. All three can be customized via the designer or advanced JSON mode.",
		},
		{
			Kind:  KindColumns,
			Title: "When Is Formatting Enough?",
			Items: []Item{
				column("✅ Use JSON Formatting When…", "",
					"Highlighting status fields with colors/icons", "Improving scannability of list data", "Showing progress bars or conditional badges",
					"Creating card-based project views", "Adding mailto: or URL action links"),
				column("⚠️ Consider SPFx When…", "",
					"You need custom web parts or extensions", "Complex business logic or external API calls", "Fully custom UI beyond list/library rendering",
					"Integration with Teams tabs or Viva Connections", "Rich interactive dashboards"),
			},
			Notes: "Help participants draw the line. JSON formatting is remarkably powerful for 'app-like' experiences without deployment overhead. SPFx is for truly custom UI/logic scenarios. Most admin teams should exhaust formatting options before requesting SPFx development.",
		},
		section("SPFx Solutions & App Governance", "Section 2", "📦",
			"Transition to SPFx and app governance."),
		{
			Kind:     KindCards,
			Title:    "SharePoint Framework (SPFx) Overview",
			Subtitle: "The modern extensibility model for SharePoint Online, Teams, and Viva Connections",
			Items: []Item{
				card("Package Format", ".sppkg file uploaded to App Catalog"),
				card("Runs Client-Side", "Executes in the browser in the user's context"),
				card("Same Permissions", "Always runs with the current user's permissions"),
				card("☁️ Code Hosting", "Bundle hosted on CDN, Azure, or SharePoint"),
			},
			Notes: "SPFx key facts: packages are .sppkg files. Code runs in the browser as the current user. The code bundle can be hosted anywhere — Office 365 CDN, Azure blob storage, or SPO itself. SPFx is the primary replacement for retired SharePoint Add-ins.",
		},
		{
			Kind:  KindColumns,
			Title: "Anatomy of an SPFx Solution",
			Items: []Item{
				column("📦  .sppkg Package", "",
					"Component manifest (metadata)", "URL pointing to bundle location", "Permissions declarations", "Feature definitions (optional)"),
				column("🏪  App Catalog", "→  deploys to →",
					"Tenant App Catalog — available org-wide", "Site Collection App Catalog — scoped to one site", "Admin reviews trust dialog before approval",
					"Enable / Disable solutions at any time", "Monitor installation count across sites"),
			},
			Notes: "Two-part structure: the .sppkg contains manifest + CDN URL; the app catalog stores and governs it. Tenant app catalog for org-wide; site collection app catalog for isolated deployments. Admin always gets a trust dialog before approving. Can disable or remove at any time.",
		},
		{
			Kind:  KindColumns,
			Title: "Tenant vs Site Collection App Catalog",
			Items: []Item{
				column("Tenant App Catalog", "",
					"Managed by SharePoint admin", "Solutions available org-wide", "Tenant-wide deployment option", "Central governance point",
					"One per tenant (+ one per geo in multi-geo)"),
				column("Site Collection App Catalog", "",
					"Managed by site collection admin", "Solutions scoped to that site only", "No 'Make available to all sites'", "Useful for isolated testing",
					"Multiple per tenant possible"),
			},
			Notes: "Tenant app catalog is the primary governance point. Site collection app catalogs allow isolated deployment for specific sites. In multi-geo tenants, each geo location gets its own catalog. For training: tenant-wide deployment is trainer-only in shared environments.",
		},
		{
			Kind:  KindSteps,
			Title: "SPFx Deployment Governance Flow",
			Items: []Item{
				step("1", "Developer builds & bundles", "gulp bundle --ship\ngulp package-solution --ship"),
				step("2", "Admin uploads .sppkg", "Apps for SharePoint library in App Catalog site"),
				step("3", "Trust dialog review", "Full trust client-side code? Check CDN domain origin"),
				step("4", "Enable & deploy scope", "Tenant-wide vs per-site install decision"),
				step("5", "Monitor & maintain", "Track installations, update or disable as needed"),
			},
			Notes: "Five-step governance flow from development to production. Emphasize step 3: the trust dialog is the admin's key checkpoint. Step 5: admins can disable a solution immediately across all sites if needed.",
		},
		{
			Kind:  KindBullets,
			Title: "2026 Alignment: SharePoint Add-Ins Retirement",
			Intro: "⚠️  Microsoft has announced the retirement of SharePoint Add-ins for SharePoint Online. The SPFx is the primary replacement technology. Add-ins should be treated as legacy.",
			Bullets: []string{
				"New customization projects → SPFx or declarative (JSON)",
				"Existing add-ins → plan migration timeline",
				"App catalog supports both .sppkg (SPFx) and .app (legacy) — for now",
				"Training focus: SPFx + declarative customization going forward",
				"Add-in model retirement does NOT affect SPFx",
			},
			Notes: "Important 2026 context. The add-in model is being retired for SharePoint Online. SPFx continues to be fully supported and invested in. From Microsoft docs: 'The SharePoint add-in model deprecation does not impact SPFx.' Train admins to focus on SPFx and declarative approaches.",
		},
		section("API Access & Permissions Governance", "Section 3", "🔐",
			"Transition to API access governance."),
		{
			Kind:  KindSteps,
			Title: "API Access: Why It Exists",
			Intro: "SPFx solutions and custom scripts can request permissions to Microsoft Entra ID-secured APIs. Admins manage these via API access.",
			Items: []Item{
				step("1", "SPFx Solution", "requests permission"),
				step("2", "API Access (Admin Center)", "approves via"),
				step("3", "Microsoft Entra ID", "grants the consent"),
			},
			Callout: "🔐  API access is a governance & security surface — not a routine click-through. Every approval grants the solution access to APIs on behalf of all tenant users.",
			Notes:   "API access is where solutions request Entra ID-secured permissions. The admin center page (SharePoint admin center → API access) shows pending and approved requests. Each approval grants application-level consent — affects the entire tenant.",
		},
		{
			Kind:  KindTable,
			Title: "API Access: Roles and Approvals",
			Table: table([]string{"API Scope", "Required Role", "Notes"},
				row("Third-party APIs", "Application Administrator", "Sufficient for most external APIs"),
				row("Microsoft Graph", "Global Administrator", "Highest privilege required"),
				row("Other Microsoft APIs", "Global Administrator", "e.g., Outlook, Teams APIs"),
				row("Custom line-of-business", "Application Administrator", "Your org's own APIs via Entra ID"),
			),
			Callout: "⚠️  Approvals affect the entire tenant. Review each request carefully before approving.",
			Notes:   "Key governance table. Third-party APIs need Application Administrator. Microsoft Graph and other Microsoft APIs require Global Administrator. Emphasize that each approval is tenant-wide — not scoped to a single site or user.",
		},
		{
			Kind:     KindColumns,
			Title:    "Governance: Scope Matters",
			Subtitle: "\"Don't surprise the tenant\" — the #1 rule for app deployment",
			Items: []Item{
				column("Site-Scoped Deployment", "",
					"Solution available in one site only", "Lower risk, easier to roll back", "Good for testing and pilots", "Site collection admin can manage"),
				column("Tenant-Wide Deployment", "",
					"Solution available everywhere immediately", "Higher risk — affects all users", "Requires SharePoint admin approval", "Cannot be 'un-deployed' per site"),
			},
			Notes: "Scope is the most important governance consideration. Tenant-wide deployment affects all users immediately. In training environments, tenant-wide deployment should be trainer-only. In production, always test in a site collection app catalog first.",
		},
		section("Lab 7: Apps and Customization", "Section 4", "🔬",
			"Transition to the lab."),
		{
			Kind:  KindSteps,
			Title: "Lab 7: Hands-On Exercises",
			Items: []Item{
				step("Task 1", "Create list NW-Pxx-AppRequests", "Build a list to track app/customization requests"),
				step("Task 2", "Apply column formatting (Status)", "Use conditional formatting to color-code the Status field"),
				step("Task 3", "Apply view formatting (row shading)", "Add alternating row colors for improved readability"),
				step("Task 4", "Trainer-led tour: Apps page", "Explore More features → Apps in SharePoint admin center"),
				step("Task 5", "Trainer-led tour: API access", "Review the API access page and pending requests"),
			},
			Callout: "⏱️  Estimated time: 30–40 min",
			Notes:   "Tasks 1-3 are hands-on for participants. Tasks 4-5 are trainer-led demonstrations in the SharePoint admin center. Keep the app catalog and API access tours brief — participants observe while the trainer navigates.",
		},
		bullets("Lab 7: Validation Checklist",
			"Walk through each checkpoint. Verify formatting works in participants' browsers. For trainer-led items, confirm participants can articulate what the Apps page and API access page are used for.",
			"NW-Pxx-AppRequests list created with Title, Status, RequestedBy, Description columns",
			"Column formatting applied — Status shows colored badges (green/red/yellow)",
			"View formatting applied — alternating row colors visible in All Items view",
			"Trainer demo: Apps page shown in SharePoint admin center → More features",
			"Trainer demo: API access page reviewed — participants can explain its purpose",
		),
		{
			Kind:  KindTable,
			Title: "Common Issues & Troubleshooting",
			Table: table([]string{"Issue", "Symptom", "Resolution"},
				row("JSON syntax error", "Preview shows error", "Check for missing commas, brackets; use a JSON validator or VS Code"),
				row("Formatting not appearing", "Column looks normal", "Verify you saved; check you're viewing the correct view"),
				row("Apps page not visible", "Admin center navigation", "Go to More features → Apps; requires SharePoint admin role"),
				row("API access empty", "No pending requests", "Normal if no solutions have requested API permissions yet"),
			),
			Notes: "Most common lab issue is JSON syntax errors — remind participants to use the designer (conditional formatting mode) first before switching to advanced JSON. Apps page requires admin role; participants with viewer-only access won't see it.",
		},
		bullets("Key Takeaways",
			"Seven key takeaways. Reinforce the customization spectrum and governance principles. The add-in retirement note is important for 2026-aligned training.",
			"Prefer OOB first → then JSON formatting → then SPFx (customization spectrum)",
			"JSON formatting changes rendering only — never modifies list data",
			"Column formatting = single field; View formatting = rows/cards/boards",
			"SPFx solutions are .sppkg files deployed via the App Catalog",
			"Tenant-wide deployment needs careful governance — don't surprise the tenant",
			"API access approvals are tenant-wide and require appropriate admin roles",
			"SharePoint Add-ins are being retired — focus on SPFx + declarative",
		),
		{
			Kind:  KindQuiz,
			Title: "Knowledge Check",
			Items: []Item{
				qa("What are the three tiers of the customization spectrum?", ""),
				qa("Does column formatting change the underlying list data? Why or why not?", ""),
				qa("What file format is used to deploy SPFx solutions to the App Catalog?", ""),
				qa("What admin role is needed to approve Microsoft Graph API access requests?", ""),
				qa("Why is tenant-wide deployment considered higher risk than site-scoped?", ""),
			},
			Notes: "Answers: Q1 — OOB Configuration, Declarative (JSON Formatting), SPFx. Q2 — No, formatting only changes rendering/display, not the stored data. Q3 — .sppkg files. Q4 — Global Administrator. Q5 — Because it immediately makes the solution available to all sites/users, and cannot be un-deployed per-site; affects the entire tenant.",
		},
		closing("End of Module 7",
			"Up Next  →  Module 8: Compliance and Governance with Microsoft Purview",
			"This concludes Module 7 and Day 2 of the training. Day 3 begins with Module 8: Compliance and Governance with Microsoft Purview. Remind participants to save their lab work and take any screenshots needed.",
			"🎉  Day 2 Complete!  Take a well-deserved break.",
		),
	},
)
