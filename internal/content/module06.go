package content

var module06 = moduleDeck(6,
	"Search in SharePoint Online & Microsoft Search",
	"Day 2  ·  Information Architecture, Search & Customization",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Find anything  ·  Curate answers  ·  Troubleshoot like a pro",
			Notes:    "Welcome to Module 6 — Search in SharePoint Online and Microsoft Search. Search is only as good as the content quality, metadata, and permissions behind it. In this module we cover security trimming, Microsoft Search answers (Bookmarks & Acronyms), search schema basics, and how to troubleshoot.",
		},
		{
			Kind:     KindCards,
			Title:    "Why Admins Care About Search",
			Subtitle: "If users can't find it, it doesn't exist — search is a core admin responsibility",
			Items: []Item{
				card("Permissions  ·  Foundation", "Security trimming ensures users only see what they have access to"),
				card("Content  ·  Quality", "Well-named files with consistent metadata are more discoverable"),
				card("🏷️ Metadata  ·  Drives Refiners", "Managed metadata from Module 5 powers search refinement panels"),
				card("🛡️ Governance  ·  Controls", "Admin-curated answers, schema settings, and indexing policies"),
			},
			Notes: "Information discovery equals productivity. If users can't find content, it might as well not exist. Search quality depends on four pillars: permissions, content quality, metadata, and governance.",
		},
		bullets("🎯  Learning Outcomes",
			"Four learning objectives covering the admin's view of search.",
			"Explain how SharePoint Search and Microsoft Search relate, and what security trimming means",
			"Describe Microsoft Search answers (Bookmarks & Acronyms) and who manages them",
			"Validate whether a site/library is searchable and request reindexing when appropriate",
			"Use basic query syntax (phrases, AND/OR/NOT, property restrictions) to troubleshoot",
		),
		section("Search Concepts", "Security trimming, indexing, and how search really works", "🔍",
			"Transition: let's start with the core search concepts every admin needs."),
		{
			Kind:     KindSteps,
			Title:    "How Search Works — The Pipeline",
			Subtitle: "From content to results — four stages",
			Items: []Item{
				step("1", "Crawl", "Content & metadata discovered from lists, libraries, and sites"),
				step("2", "🗂️ Index", "Crawled properties mapped to managed properties; stored in search index"),
				step("3", "Query", "User enters search query; matched against managed properties in the index"),
				step("4", "Trim & Return", "Results filtered by user permissions (security trimming) and displayed"),
			},
			Callout: "💡  Key Insight:  Search only finds what's in the index, and only shows results the user has permission to see. Both content quality and permissions matter.",
			Notes:   "The search pipeline: content is crawled from lists and libraries, site columns are mapped to managed properties in the index, user queries are matched against the index, and results are security-trimmed before being returned. This is the conceptual foundation.",
		},
		{
			Kind:     KindColumns,
			Title:    "🔐  Security Trimming — The #1 Rule",
			Subtitle: "Search never overrides permissions — this is by design, non-negotiable",
			Items: []Item{
				column("👤 User A (has access)", "",
					"Searches for 'Northwind Contract'", "Has Read access to the library", "✅ Document appears in results", "Search refiners show metadata"),
				column("👤 User B (no access)", "",
					"Searches for 'Northwind Contract'", "Has NO access to the library", "❌ Document does NOT appear", "As if the document doesn't exist"),
			},
			Callout: "Admin Takeaway: 'Missing' search results? Check permissions first!  ·  Security trimming happens at query time, per user  ·  🛡️ No search backdoor — data classification is enforced",
			Notes:   "Security trimming is non-negotiable. Search NEVER overrides permissions. If a document is missing from search results for a user, the first thing to check is: does that user have access to the item?",
		},
		{
			Kind:     KindCards,
			Title:    "Search Entry Points — Where Users Search",
			Subtitle: "Multiple experiences, one underlying engine — Microsoft Search",
			Items: []Item{
				card("SharePoint Search Box", "Site-scoped or hub-scoped search within SharePoint Online sites"),
				card("Microsoft 365 App Bar", "Organization-wide search across M365 from the top navigation bar"),
				card("Microsoft Teams", "Search files, messages, and people directly from Teams"),
				card("Outlook & Other Apps", "Find files and people from Outlook, Word, and other M365 apps"),
			},
			Callout: "💡  Admin Note:  Some config is site/library-scoped (safe for participant labs). Some config is organization-level (use NW-Pxx naming and trainer governance).",
			Notes:   "Users search from multiple entry points: the SharePoint search box, Microsoft 365 app bar, Teams, Outlook, and more. The underlying engine is increasingly unified (Microsoft Search), but admin surfaces differ.",
		},
		{
			Kind:     KindColumns,
			Title:    "What Admins Can Tune",
			Subtitle: "Four levers to improve the search experience",
			Items: []Item{
				column("Content Quality", "",
					"Good file names & descriptions", "Consistent metadata (Module 5)", "Clean information architecture", "Avoid duplicate / outdated content"),
				column("👁️  Search Visibility", "",
					"Site/library search settings", "Control what appears in results", "'Allow items to appear in search'", "Site-level search visibility toggle"),
				column("Curated Answers", "",
					"Bookmarks (promoted links)", "Acronyms (definitions)", "Org-wide answers at top of results", "Managed in Search & intelligence"),
				column("⚙️  Search Schema", "",
					"Crawled → managed property mapping", "Custom refiners for navigation", "Advanced: requires reindex", "Treat as trainer-led in this course"),
			},
			Notes: "Four big buckets of admin control over search experience.",
		},
		section("Microsoft Search Answers", "Bookmarks, Acronyms, and curated content", "📌",
			"Transition: now let's look at the admin-curated answers that surface at the top of search results."),
		{
			Kind:     KindColumns,
			Title:    "Microsoft Search Admin Surface",
			Subtitle: "📍  Microsoft 365 admin center → Settings → Search & intelligence",
			Items: []Item{
				column("Search Admin", "",
					"Full access to Search & intelligence", "Create/manage all answer types", "Manage search schema settings", "Assign Search editor role", "View search analytics"),
				column("✏️  Search Editor", "",
					"Create & manage Bookmarks", "Create & manage Acronyms", "Create & manage Q&As", "Cannot manage schema or roles", "Ideal for content stewards"),
			},
			Callout: "Also accessible via:  Copilot → Search  (in updated tenants, June 2025+)",
			Notes:   "The admin entry point for Microsoft Search answers is in the Microsoft 365 admin center under Settings → Search & intelligence. Two key roles: Search admin and Search editor.",
		},
		{
			Kind:     KindColumns,
			Title:    "📌  Bookmarks — Curated Links",
			Subtitle: "Promoted answers triggered by keywords — visible immediately",
			Items: []Item{
				column("What Are Bookmarks?", "",
					"Admin-curated links triggered by keywords", "Appear at TOP of search results", "Available immediately after publishing",
					"Can be Draft, Published, or Scheduled", "Customizable: title, URL, description, audience"),
				column("How to Create", "",
					"1. Go to M365 admin center → Search & intelligence", "2. Select Bookmarks → Add bookmark", "3. Enter title, URL, description",
					"4. Add trigger keywords (use NW-Pxx-…)", "5. Publish → available immediately"),
			},
			Callout: "⚠️  Shared Tenant:  Only use training-specific keywords with NW-Pxx prefix. Never use generic terms like 'HR', 'IT', or 'Benefits' — they affect the whole organization.",
			Notes:   "Bookmarks are admin-curated links triggered by keywords. They appear at the top of search results immediately after publishing. In our shared tenant, use NW-Pxx prefixed keywords to avoid conflicts.",
		},
		{
			Kind:  KindColumns,
			Title: "📝  Acronyms — Definitions at a Glance",
			Items: []Item{
				column("Admin-Curated", "",
					"Manually created by Search admin/editor", "Set to Draft or Published state", "Published → available within ~24 hours",
					"Can also be Excluded (blocked)", "Bulk import via CSV supported"),
				column("System-Curated", "",
					"Automatically discovered by Microsoft Search", "Mined from emails, documents, public data", "No admin action required",
					"Admins can exclude unwanted acronyms", "Supplements admin-curated definitions"),
			},
			Callout: "⏱️  Important:  Published acronyms take up to a day to appear in search results. Plan accordingly during labs — Bookmarks (immediate) are easier to validate.",
			Notes:   "Acronyms can be admin-curated or system-curated. Admin acronyms can be Draft or Published. Published acronyms take up to a day to appear. System-curated acronyms are discovered from emails and documents automatically.",
		},
		{
			Kind:  KindTable,
			Title: "❓  Q&A Answers — Status Note (2026)",
			Table: table([]string{"📋  What You Need to Know", ""},
				row("Concept", "Q&As are question-answer pairs curated by admins, historically shown at the top of search results"),
				row("Status", "Microsoft Search in Bing retired (March 2025). Q&A availability varies by tenant — check your admin center"),
				row("Our Approach", "Teach Q&As as a concept for exam/knowledge purposes. Design hands-on labs around Bookmarks + Acronyms"),
				row("If Available", "If your tenant still shows Q&As in Search & intelligence, they work similarly to Bookmarks (keyword-triggered)"),
			),
			Notes: "Q&A answers were historically part of Microsoft Search. With the retirement of Microsoft Search in Bing (March 2025), some answer types may not be available. We teach Q&As as a concept but focus labs on Bookmarks and Acronyms.",
		},
		{
			Kind:  KindTable,
			Title: "Answer Types Comparison",
			Table: table([]string{"Feature", "📌 Bookmarks", "📝 Acronyms", "❓ Q&As"},
				row("Purpose", "Promoted links", "Definitions", "FAQ answers"),
				row("Trigger", "Keyword match", "Acronym query", "Keyword match"),
				row("Created by", "Search admin/editor", "Admin or system", "Search admin/editor"),
				row("Availability", "Immediate", "Up to 24 hours", "Varies by tenant"),
				row("States", "Draft / Published / Scheduled", "Draft / Published / Excluded", "Draft / Published"),
				row("Lab focus", "✅ Primary", "✅ Secondary", "⚪ Concept only"),
			),
			Notes: "Quick comparison table of the three answer types: Bookmarks vs Acronyms vs Q&As.",
		},
		section("Search Schema & Indexing", "Crawled properties, managed properties, and reindexing", "⚙️",
			"Transition: now let's look under the hood — crawled vs managed properties."),
		{
			Kind:     KindColumns,
			Title:    "Crawled vs Managed Properties",
			Subtitle: "The bridge between content and searchable index",
			Items: []Item{
				column("📥  Crawled Properties", "",
					"Discovered automatically during content crawl", "Raw metadata from documents, lists, libraries", "Examples: ows_Title, ows_Author, ows_Created",
					"Not directly searchable by users", "Must be mapped to managed properties"),
				column("📤  Managed Properties", "",
					"Kept in the search index (queryable/retrievable)", "Users search against managed properties", "Settings: queryable, searchable, retrievable, refinable, sortable",
					"Built-in (e.g. Author, Title) or custom (RefinableString00…)", "Changes require reindexing the affected content"),
			},
			Callout: "⚠️  Warning:  Changing managed property mappings can affect other M365 experiences. In this course, treat schema changes as trainer-led unless explicitly assigned.",
			Notes:   "Crawled properties are discovered during crawl — they're raw. Managed properties are what's kept in the index and can be queried. Only managed properties are searchable. Schema changes require reindex.",
		},
		{
			Kind:  KindTable,
			Title: "Built-in Managed Properties (Quick Reference)",
			Table: table([]string{"Property", "Description", "Queryable", "Searchable", "Retrievable", "Refinable"},
				row("Author", "Document author", "✅", "✅", "✅", "✅"),
				row("Title", "Document title", "✅", "✅", "✅", "❌"),
				row("FileType", "File extension", "✅", "❌", "✅", "✅"),
				row("Created", "Date created", "✅", "❌", "✅", "✅"),
				row("Path", "Document URL", "✅", "❌", "✅", "❌"),
				row("RefinableString00…199", "Custom (alias)", "✅", "❌", "✅", "✅"),
			),
			Callout: "💡  Tip:  To create a custom refiner, map a crawled property to an unused RefinableStringXX, set an alias, then reindex. Microsoft recommends tenant-level mapping for consistency.",
			Notes:   "SharePoint comes with hundreds of pre-mapped managed properties. For custom needs, use the RefinableStringXX or RefinableDateXX properties and rename them via alias.",
		},
		{
			Kind:  KindColumns,
			Title: "Reindexing — When and Why",
			Items: []Item{
				column("✅  When to Reindex", "",
					"After changing managed property mappings", "After changing search visibility settings", "After adding/modifying site columns used in search",
					"When content 'should be there' but isn't showing up"),
				column("❌  When NOT to Reindex", "",
					"Routinely or 'just in case' (causes load)", "After simply uploading new content (auto-crawled)", "When the issue is permissions (security trimming)",
					"On large sites without good reason"),
				column("🔄  How to Request Reindex (Library)", "",
					"1. Go to the library → Settings → Library settings", "2. Under General Settings → Advanced settings", "3. Scroll to 'Reindex Document Library'",
					"4. Click the button → content is re-crawled at next scheduled crawl"),
			},
			Notes: "Reindexing is needed after schema changes or search visibility changes. Caution: reindexing can create heavy load. Only reindex when necessary.",
		},
		section("Query Syntax for Admins", "KQL basics for troubleshooting search results", "⌨️",
			"Transition: knowing basic query syntax helps admins troubleshoot search issues."),
		{
			Kind:     KindTable,
			Title:    "KQL Query Basics for Admins",
			Subtitle: "Keyword Query Language — your troubleshooting Swiss Army knife",
			Table: table([]string{"Technique", "Example", "Effect"},
				row("Phrase Search", "\"Northwind Contract Alpha\"", "Exact phrase match (quotes required)"),
				row("Boolean AND", "Alpha AND Harborlight", "Both terms must appear (AND must be uppercase)"),
				row("Boolean OR", "Contract OR Agreement", "Either term matches (OR must be uppercase)"),
				row("Exclusion", "Alpha -Beta", "Exclude results containing 'Beta' from results"),
				row("Author Filter", "author:\"Jane Smith\"", "Restrict by document author property"),
				row("File Type", "filetype:docx", "Restrict by file extension (docx, pdf, xlsx, etc.)"),
			),
			Notes: "KQL (Keyword Query Language) is the query language behind SharePoint search. Admins don't need to be experts, but knowing basics helps troubleshoot 'why isn't this showing up?' scenarios.",
		},
		{
			Kind:     KindSteps,
			Title:    "🛠️  Search Troubleshooting Flow",
			Subtitle: "\"I uploaded a document but it doesn't show in search\" — follow these steps",
			Items: []Item{
				step("1", "Check Permissions", "Does the user have access to the item? (Security trimming is #1 cause)"),
				step("2", "Check Visibility", "Is the site/library allowed to appear in search? (Search visibility setting)"),
				step("3", "Request Reindex", "If settings changed recently, request a reindex of the library or site"),
				step("4", "Wait & Validate", "Allow time for crawling (minutes to hours). Then search again."),
			},
			Callout: "🔴  Still not showing?  Check if numeric-only content (not indexed in Excel). Verify the managed property mapping. Escalate to Microsoft support if persistent.",
			Notes:   "When a document doesn't appear in search results, follow this troubleshooting flow: 1) Check permissions, 2) Check search visibility, 3) Request reindex if needed, 4) Allow time for indexing.",
		},
		section("Lab & Validation", "Hands-on search labs and validation checks", "🔬",
			"Transition: time for hands-on lab preview and validation checkpoints."),
		{
			Kind:     KindSteps,
			Title:    "🔬  Lab 6 Preview",
			Subtitle: "Hands-on: validate search, reindex, and curate answers",
			Items: []Item{
				step("1", "Upload Seed Docs", "Upload seed documents to your NW-Pxx library and verify they appear in search"),
				step("2", "Validate Search", "Use phrase search and KQL to locate your documents. Test security trimming."),
				step("3", "Reindex Library", "Request a reindex of your library and observe the effect on search results"),
				step("4", "Create Bookmark", "Create an NW-Pxx Bookmark in Search & intelligence. Validate immediate availability"),
			},
			Callout: "📝  Bonus:  Create an Acronym (e.g. NW-Pxx-NDA = 'Non-Disclosure Agreement'). Note: published acronyms may take up to 24 hours to appear — validate next day.",
			Notes:   "Lab 6 overview: upload seed docs, validate search results, reindex a library, create a Bookmark (immediate), and create an Acronym (delayed).",
		},
		{
			Kind:  KindCards,
			Title: "✅  Validation Checklist",
			Items: []Item{
				card("☐  Seed docs discoverable", "Search for your uploaded documents — they should appear in results for your account"),
				card("☐  Security trimming works", "Ask a neighbor to search for your docs — if they lack access, docs shouldn't appear"),
				card("☐  Reindex completed", "After requesting reindex, wait for crawl, then verify updated content appears"),
				card("☐  Bookmark works", "Search your NW-Pxx keyword — the bookmark should appear at the top of results immediately"),
				card("☐  Acronym created", "Published acronym visible (may take up to 24h). Verify Draft vs Published state in admin center"),
				card("☐  KQL queries work", "Test: \"exact phrase\", author:\"Name\", filetype:docx. Verify results match expectations"),
			},
			Notes: "Pre- and post-lab validation checklist. These are the key checkpoints that confirm the lab objectives have been met.",
		},
		{
			Kind:  KindTable,
			Title: "🛠️  Common Troubleshooting Issues",
			Table: table([]string{"Symptom", "Resolution", "Check"},
				row("Document not in search results", "Check: user permissions, search visibility settings, indexing delay. Try reindex if recently changed settings.", "Permissions → Visibility → Reindex → Wait"),
				row("Bookmark not appearing", "Verify the bookmark is Published (not Draft). Check keyword spelling. Bookmarks are immediate after publish.", "Admin center → Search & intelligence → Bookmarks"),
				row("Acronym not showing after publish", "Published acronyms can take up to 24 hours. Verify it's in Published state, not Draft.", "Wait 24h. Check state in admin center."),
				row("KQL query returns no results", "Check operator case (AND/OR/NOT must be uppercase). Verify the property is queryable (not all properties are).", "Test with simple phrase first, then add filters"),
				row("Reindex seems to have no effect", "Reindex marks content for next crawl — this isn't instant. Wait 15-60 minutes. Avoid re-triggering.", "Be patient. Check again after 1 hour."),
			),
			Notes: "Top 5 lab issues and their resolutions.",
		},
		{
			Kind:  KindCards,
			Title: "📌  Key Takeaways",
			Items: []Item{
				card("Security Trimming", "Search never overrides permissions. 'Missing' results? Check access first — this is the #1 troubleshooting step."),
				card("Curated Answers", "Bookmarks (immediate) and Acronyms (up to 24h) help users find the right content faster. Use NW-Pxx keywords in shared tenants."),
				card("⚙️ Search Schema", "Crawled properties → managed properties → index. Schema changes require reindex. Treat as trainer-led."),
				card("Reindexing", "Reindex after schema/visibility changes, not routinely. Causes load — be deliberate and patient."),
				card("⌨️ KQL Queries", "Phrase search with quotes, AND/OR/NOT (uppercase), property restrictions (author:, filetype:) for troubleshooting."),
			},
			Notes: "Recap the module: search pipeline, security trimming, answers, schema, reindexing, and KQL basics.",
		},
		{
			Kind:  KindQuiz,
			Title: "❓  Knowledge Check",
			Items: []Item{
				qa("What is security trimming and why is it the #1 rule for search?", ""),
				qa("What is the difference between Bookmarks and Acronyms in Microsoft Search?", ""),
				qa("When should you request a reindex of a library — and when should you NOT?", ""),
				qa("What are crawled properties vs managed properties, and how do they relate?", ""),
				qa("Write a KQL query to find all DOCX files authored by 'Jane Smith' about 'Northwind'.", ""),
			},
			Notes: "5 discussion questions to check understanding.",
		},
		closing("✅  Module 6 Complete!",
			"Up Next  →  Module 7: Apps and Customization",
			"Module 6 complete. Next up: Module 7 — Apps and Customization.",
			"🧩 Governance, deployment, and custom solutions in SharePoint",
		),
	},
)
