package content

var module05 = moduleDeck(5,
	"Managing Metadata and the Term Store",
	"Day 2  ·  Information Architecture, Search & Customization",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Classify consistently  ·  Govern centrally  ·  Find anything fast",
			Notes:    "Welcome to Module 5 — Managing Metadata and the Term Store. Metadata is the backbone of information architecture in SharePoint. In this module we learn why consistent tagging beats folders, how the term store works, and how to apply managed metadata to libraries.",
		},
		{
			Kind:     KindCards,
			Title:    "Why Metadata Matters",
			Subtitle: "Move beyond folders — let documents describe themselves",
			Items: []Item{
				card("🏷️ Consistent Classification", "Same terms used across sites, libraries, and teams"),
				card("Better Search Refiners", "Metadata powers the refinement panel in search"),
				card("Reliable Views & Filters", "Group, sort, and filter by metadata columns"),
				card("🛡️ Stronger Governance", "Enforce retention, DLP, and compliance via tags"),
			},
			Notes: "Metadata answers the question 'What is this document about?' without relying on the file name or folder path. Consistent metadata drives better search refiners, reliable views, and enforceable governance policies. Use the Northwind contracts example to make this concrete.",
		},
		bullets("🎯  Learning Outcomes",
			"Set clear expectations: by the end of this module learners can explain IA principles, navigate the term store, and apply managed metadata columns.",
			"Explain basic IA principles and why metadata improves findability and governance",
			"Describe the Term Store hierarchy: groups → term sets → terms",
			"Describe term store roles and how delegated term management works",
			"Apply managed metadata to a document library via a managed metadata column",
		),
		section("Information Architecture", "Why structure matters before you touch the term store", "🏗️",
			"Transition: before diving into the term store, let's understand *why* information architecture matters."),
		{
			Kind:     KindCards,
			Title:    "Information Architecture Principles",
			Subtitle: "How users actually find information — and how admins should structure it",
			Items: []Item{
				card("Findability", "Users search by concepts (type, department, status), not by file names"),
				card("Consistency", "Same classification terms across all sites and teams reduces confusion"),
				card("Connectedness", "Related content linked via shared metadata enables cross-site discovery"),
				card("Scalability", "A taxonomy designed today should grow with the org without re-work"),
			},
			Callout: "⚠️  Common Anti-Patterns:  Too many folders encoding tribal knowledge  ·  Free-text columns for critical classification (spelling variants!)  ·  No governance = no consistency",
			Notes:   "Users don't search for 'the correct file name' — they search for concepts: contract type, department, customer, status. Good IA makes content findable by concept rather than by tribal knowledge of folder paths.",
		},
		section("Metadata Types", "Managed metadata vs site columns — when to choose what", "🏷️",
			"Transition: now let's compare the two main metadata approaches."),
		{
			Kind:     KindColumns,
			Title:    "Site Columns vs Managed Metadata",
			Subtitle: "Right tool for the right job — both are valuable",
			Items: []Item{
				column("📋  Site Columns", "",
					"Reusable field definition (date, number, choice, yes/no)", "Scope: site or content type", "Great for small, stable option lists",
					"No built-in synonyms or hierarchy", "Users type or select from a fixed list"),
				column("🏷️  Managed Metadata", "",
					"Terms from a centrally managed term store", "Scope: tenant-wide (or local term set)", "Ideal for organization-wide classification",
					"Supports synonyms, hierarchy, and multilingual labels", "Users pick from a type-ahead controlled picker"),
			},
			Callout: "💡 Rule of thumb:  Need governance, hierarchy, or reuse across sites?  → Managed Metadata",
			Notes:   "Site columns are great for simple, stable lists. Managed metadata columns are ideal when you need organization-wide controlled vocabulary, synonyms, hierarchy, and re-use across many site collections. Key decision: do you need governance and hierarchy? Choose managed metadata.",
		},
		{
			Kind:  KindCards,
			Title: "📖  Key Terminology",
			Items: []Item{
				card("Taxonomy", "Formal, hierarchical classification system (controlled, structured, top-down)"),
				card("Folksonomy", "Informal, user-driven tagging (unstructured, bottom-up, like tag clouds)"),
				card("Managed Terms", "Pre-defined terms organized in hierarchical term sets by admins"),
				card("Enterprise Keywords", "Free-form words/phrases added by users — can later be promoted to managed terms"),
				card("Open Term Set", "Users can add new terms when tagging items"),
				card("Closed Term Set", "Only authorized users can add terms (stricter governance)"),
			},
			Notes: "These are the official Microsoft terms. Make sure learners can distinguish taxonomy vs folksonomy, managed terms vs enterprise keywords, open vs closed term sets.",
		},
		{
			Kind:  KindTable,
			Title: "✅  Benefits of Managed Metadata",
			Table: table([]string{"Benefit", "What it gives you", "In practice"},
				row("Consistent Use", "Control which terms users can apply. Same terms across all sites = reliable governance.", "Term sets enforce uniformity"),
				row("Improved Discoverability", "Search refinement panel lets users filter results by metadata facets.", "Metadata powers refiners in search"),
				row("Metadata Navigation", "Site admins build navigation and views based on metadata terms.", "Filter lists/libraries by metadata pivots"),
				row("Flexibility", "Supports range from strict taxonomy to open folksonomy — your choice.", "Open or closed term sets per need"),
			),
			Notes: "Per Microsoft docs: consistent metadata improves search, navigation, content discoverability, and enables metadata-driven navigation in lists and libraries.",
		},
		section("The Term Store", "Hierarchy, roles, and delegated management", "🗂️",
			"Transition: now let's look at the heart of managed metadata — the Term Store."),
		{
			Kind:     KindColumns,
			Title:    "Term Store Hierarchy",
			Subtitle: "Three levels — each with a distinct purpose",
			Items: []Item{
				column("📦  Term Group", "Security boundary",
					"Container for term sets", "Controls who can manage", "Only term store admins create groups", "E.g. 'NW-Pxx-TermGroup'"),
				column("📋  Term Set", "Group of related terms",
					"Global or local scope", "Open or closed for submissions", "Has owner, contact, stakeholders", "E.g. 'NW-Pxx-ContractType'"),
				column("🏷️  Terms", "Individual labels",
					"Unique ID + text labels", "Supports synonyms", "Multilingual labels possible", "E.g. NDA, MSA, SOW, Renewal"),
			},
			Callout: "💡  Access the term store:  SharePoint admin center → Content services → Term store",
			Notes:   "The term store has a 3-level hierarchy: Term Group → Term Set → Terms. Groups provide security boundaries (who can manage what). Term sets can be global (tenant-wide) or local (site-scoped). Terms can have synonyms, translations, and custom properties.",
		},
		{
			Kind:  KindColumns,
			Title: "Global vs Local Term Sets",
			Items: []Item{
				column("🌐  Global Term Sets", "",
					"Available across ALL sites in the tenant", "Created in the Term Store admin center", "Ideal for org-wide classification (departments, regions)",
					"Requires Term Store Admin or Contributor role", "Our approach: NW-Pxx-TermGroup in global scope"),
				column("📍  Local Term Sets", "",
					"Scoped to a single site (site collection)", "Created when adding a MM column to a list/library", "Only visible within that site collection",
					"No special admin role required (site owner can create)", "Our fallback if term group creation is restricted"),
			},
			Notes: "Clarify the scope difference: global term sets are tenant-wide, local term sets are scoped to a site. In our shared training tenant we prefer global term sets within participant-specific groups, but fall back to local if needed.",
		},
		{
			Kind:     KindColumns,
			Title:    "Delegated Term Management Roles",
			Subtitle: "Three levels of control — delegate wisely",
			Items: []Item{
				column("Term Store Admin", "",
					"Create / delete term groups", "Add or remove other admins", "Assign group managers & contributors", "Change working languages", "All actions of lower roles"),
				column("🛡️  Group Manager", "",
					"Manage term sets within their group", "Add or remove contributors", "All actions of contributor role", "Cannot create new groups"),
				column("✏️  Contributor", "",
					"Create / edit term sets and terms", "Within assigned group only", "Cannot manage roles or groups", "Lowest management privilege"),
			},
			Callout: "⚠️  Note:  Owner, Contact, and Stakeholders labels on term sets are informational only — they do NOT grant term store permissions.",
			Notes:   "Three roles in the term store: Term Store Admin has full control, Group Manager can manage term sets within their group and assign contributors, Contributor can create/edit terms and term sets. Important: Owner/Contact/Stakeholders labels are informational only — they don't grant permissions.",
		},
		{
			Kind:  KindColumns,
			Title: "Assigning Term Store Roles",
			Items: []Item{
				column("Add Term Store Admin", "",
					"1. Go to Term store page", "2. Select the taxonomy in tree view", "3. Under Admins → click Edit", "4. Enter names/email → Save"),
				column("Add Group Manager", "",
					"1. Select the target term group", "2. Go to People page", "3. Under Group Managers → Edit", "4. Enter names/email → Save"),
				column("Add Contributor", "",
					"1. Select the target term group", "2. Go to People page", "3. Under Contributors → Edit", "4. Enter names/email → Save"),
			},
			Callout: "📍  Path:  SharePoint admin center → Content services → Term store",
			Notes:   "Walk through the admin center steps for assigning each role. All roles are managed from SharePoint admin center → Content services → Term store.",
		},
		{
			Kind:  KindCards,
			Title: "What Can Site Users Do with Metadata?",
			Items: []Item{
				card("🏷️ Tag Items", "Update managed metadata columns (if term set is open or allows fill-in)"),
				card("Add Keywords", "Add enterprise keywords when the keywords column is enabled"),
				card("Navigate by Metadata", "Use metadata navigation to filter and browse list/library items"),
				card("Refine Search", "Use managed terms to refine search results via the panel"),
				card("Create Local Sets", "Site owners can create local term sets when adding MM columns"),
				card("Contribute to Open Sets", "Add new terms to open term sets when tagging content"),
			},
			Notes: "Not just admins — regular site members interact with metadata too. They can tag items, add enterprise keywords, use metadata navigation, and even create local term sets if they're site owners.",
		},
		section("Applying Metadata", "From term store to library columns — hands-on", "⚙️",
			"Transition: now let's put theory into practice — creating and applying metadata."),
		{
			Kind:     KindSteps,
			Title:    "Creating a Term Group",
			Subtitle: "Prerequisite: you must be a Term Store Admin",
			Items: []Item{
				step("1", "Navigate", "SharePoint admin center → Content services → Term store"),
				step("2", "Add Group", "Click 'Add term group' in the right pane"),
				step("3", "Name It", "Enter group name (e.g. NW-Pxx-TermGroup) → Enter"),
				step("4", "Configure", "Add description, assign group managers & contributors"),
			},
			Notes: "Step-by-step guide to creating a term group. Must be a Term Store Admin to do this. If restricted in a shared tenant, participants fall back to local term sets.",
		},
		{
			Kind:  KindColumns,
			Title: "Creating a Term Set & Adding Terms",
			Items: []Item{
				column("📋  Create Term Set", "",
					"1. Expand the group → click 'Add term set'", "2. Type name (e.g. NW-Pxx-ContractType) → Enter", "3. General tab: set Owner, Contact, Stakeholders",
					"4. Usage settings: choose Open or Closed", "5. Enable 'Available for tagging'"),
				column("🏷️  Add Terms", "",
					"1. Select the term set in tree view", "2. Click 'Add term'", "3. Type term name (e.g. NDA) → Enter",
					"4. Optional: add synonyms, translations", "5. Repeat for MSA, SOW, Renewal"),
			},
			Notes: "After the group exists, create a term set and populate it with terms. Demonstrate open vs closed submission policy and the tagging toggle.",
		},
		{
			Kind:     KindSteps,
			Title:    "Adding a Managed Metadata Column",
			Subtitle: "Connect the term store to your library",
			Items: []Item{
				step("1", "Open Library Settings", "Go to NW-Pxx-Contracts → Settings → Library settings → 'Create column'"),
				step("2", "Choose Type", "Select 'Managed Metadata' as the column type → name it 'Contract Type'"),
				step("3", "Connect Term Set", "Browse or search for your term set (NW-Pxx-ContractType) and select it"),
				step("4", "Tag Documents", "Edit document properties → use type-ahead picker to select terms (NDA, MSA…)"),
			},
			Callout: "💡  Enterprise Keywords column can also be added — it allows free-form tagging alongside managed terms",
			Notes:   "The bridge between term store and library: the Managed Metadata column. When users add or edit documents, they pick from the type-ahead term picker.",
		},
		section("Shared-Tenant Safety", "Keeping the training environment clean", "🤝",
			"Transition: in our shared training tenant, we need to be extra careful."),
		{
			Kind:  KindTable,
			Title: "🤝  Shared-Tenant Safety Rules",
			Table: table([]string{"Rule", "What it means", "Example"},
				row("Use NW-Pxx- prefix", "Always name your term groups, sets, and columns with your participant ID", "E.g. NW-P03-TermGroup, NW-P03-ContractType"),
				row("Never edit others' taxonomy", "Don't modify, rename, or delete term groups/sets from other participants", "Treat other participants' metadata as read-only"),
				row("Fallback to local", "If you can't create a global term group, use a local term set instead", "Create the term set when adding the MM column"),
				row("Clean up after labs", "Delete your test term groups/sets when instructed during cleanup", "Keeps the tenant tidy for future sessions"),
			),
			Notes: "In a shared training tenant, every participant touches the same term store. Following these rules prevents cross-impact between participants.",
		},
		{
			Kind:     KindColumns,
			Title:    "🏢  Scenario: Northwind Contracts Taxonomy",
			Subtitle: "Applying metadata to the contracts library from Module 4",
			Items: []Item{
				column("📦 Taxonomy Structure", "",
					"📦  NW-Pxx-TermGroup",
					"└── 📋  NW-Pxx-ContractType",
					"      ├── 🏷️  NDA (Non-Disclosure Agreement)",
					"      ├── 🏷️  MSA (Master Service Agreement)",
					"      ├── 🏷️  SOW (Statement of Work)",
					"      └── 🏷️  Renewal"),
				column("⚙️ How It's Applied", "",
					"Library: NW-Pxx-Contracts", "New column: 'Contract Type' (Managed Metadata)", "Connected to: NW-Pxx-ContractType term set",
					"Users pick terms via type-ahead picker", "Views: group contracts by type", "Search: refine results by contract type"),
			},
			Notes: "The Northwind scenario ties everything together: participants create a taxonomy for contract types and apply it to the contracts library created in Module 4.",
		},
		section("Lab & Validation", "Hands-on practice and validation checks", "🔬",
			"Transition: now for the hands-on lab and what to validate afterward."),
		{
			Kind:     KindSteps,
			Title:    "🔬  Lab 5 Preview",
			Subtitle: "Hands-on: Create taxonomy + apply managed metadata",
			Items: []Item{
				step("1", "Create Term Group", "Navigate to the Term Store and create NW-Pxx-TermGroup (or use local fallback)"),
				step("2", "Create Term Set", "Within your group, create NW-Pxx-ContractType with Closed submission policy"),
				step("3", "Add Terms", "Add NDA, MSA, SOW, and Renewal as terms to your term set"),
				step("4", "Add MM Column", "In NW-Pxx-Contracts library, create 'Contract Type' managed metadata column"),
			},
			Callout: "📝  Bonus:  Tag uploaded contract documents with the new column and create a view grouped by Contract Type to see metadata-driven organization in action.",
			Notes:   "Preview of Lab 5: participants will create a term group, term set, add terms, then add a managed metadata column to the contracts library and tag documents. Reinforces the library created in Module 4.",
		},
		{
			Kind:  KindTable,
			Title: "🛠️  Validation & Troubleshooting",
			Table: table([]string{"Symptom", "Resolution", "Check"},
				row("Can't create term group", "You need Term Store Admin role. Fallback: create a local term set when adding the column.", "Ask trainer to verify your role"),
				row("Term set not visible in column picker", "Ensure 'Available for tagging' is enabled in the term set's Usage Settings tab.", "Term store → select set → Usage settings"),
				row("Users adding unexpected free-text terms", "Your term set is Open. Change to Closed if you need strict control.", "Term set → Usage settings → Submission policy"),
				row("Column shows GUID instead of term name", "Replication delay or column mapping issue. Wait a few minutes and refresh. Re-check the term set binding.", "Library settings → column → term set mapping"),
				row("Terms not appearing for other users", "Check that terms have 'Available for tagging' enabled and the user has at least read access to the site.", "Term store → select term → Usage settings"),
			),
			Notes: "Common issues and how to resolve them. These are the top 5 things that trip up learners during the lab.",
		},
		{
			Kind:  KindCards,
			Title: "📌  Key Takeaways",
			Items: []Item{
				card("🏗️ Information Architecture", "Good IA makes content findable by concept, not by folder path. Metadata > folders for classification at scale."),
				card("🏷️ Managed Metadata", "Use managed metadata for org-wide controlled vocabulary. Supports synonyms, hierarchy, and type-ahead picking."),
				card("🗂️ Term Store Hierarchy", "Term Group → Term Set → Terms. Groups = security boundaries. Global sets for tenant-wide use, local for site-scoped."),
				card("Delegated Roles", "Term Store Admin > Group Manager > Contributor. Owner/Contact/Stakeholders are labels, not permissions."),
				card("⚙️ Practical Application", "Add a Managed Metadata column to connect term store to library. Users tag documents via type-ahead; views and search benefit."),
			},
			Notes: "Recap the module: IA principles, term store hierarchy, delegated roles, and practical application of managed metadata columns.",
		},
		{
			Kind:  KindQuiz,
			Title: "❓  Knowledge Check",
			Items: []Item{
				qa("What is the difference between a \"term set\" and a \"term group\"?", ""),
				qa("When would you prefer a managed metadata column over a standard Choice column?", ""),
				qa("Who can create a new term group in the term store?", ""),
				qa("What does 'delegated term management' mean in practice?", ""),
				qa("What shared-tenant behaviors should you avoid when working with the term store?", ""),
			},
			Notes: "5 questions to check understanding. Encourage discussion rather than quick answers.",
		},
		closing("✅  Module 5 Complete!",
			"Up Next  →  Module 6: Configuring the Search Experience",
			"Module 5 complete. Next up: Module 6 — Configuring the Search Experience.",
			"🔍 Discover how metadata powers search refiners and discovery",
		),
	},
)
