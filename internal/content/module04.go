package content

import "github.com/northwind-training/coursegen/internal/theme"

var module04 = moduleDeck(4,
	"Permissions and Collaboration Model",
	"Day 2  ·  Information Architecture, Search & Customization",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Control access  ·  Simplify governance  ·  Enable secure collaboration",
			Notes:    "Welcome to Module 4 — Permissions and Collaboration Model. This module covers the core admin skill: managing who can access what, using inheritance, groups, and sharing links. Permissions are the #1 topic in SharePoint support tickets, so this module is high-impact.",
		},
		{
			Kind:     KindCards,
			Title:    "Why Permissions Matter",
			Subtitle: "The #1 admin support topic — understanding access is a core competency",
			Items: []Item{
				card("#1  Support Topic", "Access-related tickets dominate helpdesk queues"),
				card("50K  Scope Limit", "Max unique permission scopes per document library"),
				card("5K  Recommended", "Keep unique scopes under 5,000 for best performance"),
				card("3  Default Groups", "Owners · Members · Visitors created with every site"),
			},
			Notes: "Permissions are the single most common support topic for SharePoint admins. Most 'Access Denied' tickets trace back to misconfigured permissions or broken inheritance. This overview sets the scene for why mastering permissions is essential.",
		},
		bullets("🎯  Learning Outcomes",
			"Set clear expectations: by end of this module, learners can design and validate a permission model.",
			"Explain permission inheritance and permission scopes in practical admin terms",
			"Describe SharePoint groups vs Microsoft 365 group-connected permissions",
			"Design a permission model for a realistic collaboration scenario",
			"Implement and validate site/library/folder permissions safely in a shared tenant",
			"Explain how SharePoint and OneDrive sharing policies relate at the org and site level",
		),
		section("Permission Fundamentals", "What every admin should know — and troubleshoot", "🔑",
			"Transition: let's begin with the building blocks of SharePoint permissions."),
		{
			Kind:  KindCards,
			Title: "Four Building Blocks of SharePoint Permissions",
			Items: []Item{
				card("Principal", "The identity you grant permissions to: User, SharePoint Group, or Entra ID Group"),
				card("Permission Level", "A named set of permissions: Full Control · Edit · Read · Contribute"),
				card("⬇️ Inheritance", "Child inherits parent's permissions by default: Site → Library → Folder → File"),
				card("✂️ Unique Permissions", "Break inheritance to create a new scope. Object gets its own Access Control List"),
			},
			Notes: "These four concepts are the foundation. Principal = who. Permission Level = what they can do. Inheritance = where the rule comes from. Unique permissions = where the rule is overridden.",
		},
		{
			Kind:     KindSteps,
			Title:    "Permission Inheritance Flow",
			Subtitle: "Permissions cascade downward — breaking creates a new scope",
			Items: []Item{
				step("1", "Site", "Root permissions (Owners / Members / Visitors)"),
				step("2", "Library", "Inherits from site (or unique if broken)  ·  ✓ Inherits  ·  ✂ Can Break"),
				step("3", "Folder", "Inherits from library (break here for isolation)  ·  ✓ Inherits  ·  ✂ Can Break"),
				step("4", "File", "Inherits from folder (avoid per-file unique perms)  ·  ✓ Inherits  ·  ✂ Can Break"),
			},
			Callout: "💡 Best Practice:  Keep unique permission scopes under 5,000 per library (recommended limit). The hard limit is 50,000 unique ACLs per document library. Share folders, not individual files.",
			Notes:   "Visualize the inheritance chain: Site → Library → Folder → File. Each level can inherit or break. When broken, a new permission scope is created.",
		},
		{
			Kind:  KindCards,
			Title: "⚠️  Why Unique Permissions Are Risky",
			Items: []Item{
				card("Harder to Audit", "Each unique scope means another set of ACLs to review. Large-scale audits become exponentially complex."),
				card("🛠️ Harder to Troubleshoot", "\"Who has access?\" becomes a detective game when scopes are scattered across folders and files."),
				card("Performance Impact", "Exceeding 5,000 unique scopes increases SQL round trips, degrading list view performance."),
				card("Easier to Misconfigure", "Ad-hoc per-file permissions are often forgotten, leading to accidental data exposure or access loss."),
			},
			Notes: "This slide hammers home the operational cost of breaking inheritance too often. Reference Microsoft guidance on permission scopes and best practice.",
		},
		{
			Kind:  KindTable,
			Title: "✅  Best Practices: Minimizing Permission Scopes",
			Table: table([]string{"Practice", "Why"},
				row("Leverage inheritance", "Let children inherit from parent — don't break unless necessary"),
				row("Share folders, not files", "One shared folder = 1 scope; 10K individual files = 10K scopes"),
				row("Use groups, not individuals", "SharePoint groups + Entra ID groups keep ACLs clean"),
				row("Share large folders early", "Folders with >100K items cannot break inheritance later"),
				row("Regular audits", "Review and clean up unique scopes and stale sharing links"),
				row("Design boundaries first", "Decide site vs library vs folder scope before content arrives"),
			),
			Notes: "Microsoft official recommendations for managing permission scopes efficiently.",
		},
		section("Groups and Site Types", "SharePoint Groups · M365 Groups · Teams Connections", "👥",
			"Transition: Now let's see how groups and site types interact with permissions."),
		{
			Kind:     KindColumns,
			Title:    "Default SharePoint Groups",
			Subtitle: "Three groups created automatically with every site",
			Items: []Item{
				column("Owners", "Full Control",
					"Manage site settings & permissions", "Add/remove members from all groups", "Create subsites and manage navigation", "Delete the site"),
				column("✏️  Members", "Edit",
					"Add/edit/delete content in libraries & lists", "Create document libraries and lists", "Cannot manage site settings", "Cannot change permissions"),
				column("👁️  Visitors", "Read",
					"View content only", "Cannot add, edit, or delete items", "Cannot change site settings", "Ideal for broad read-only access"),
			},
			Notes: "Every SharePoint site gets three default groups. This is the foundation of the permission model. Teach learners to always use groups instead of direct user assignments.",
		},
		{
			Kind:  KindColumns,
			Title: "SharePoint Groups vs M365 Group-Connected",
			Items: []Item{
				column("📋  SharePoint Groups", "Communication Sites & Classic Sites",
					"Site-scoped: exist only within the site", "Managed in SharePoint site settings", "3 defaults: Owners, Members, Visitors",
					"Can add users or Entra security groups", "Full admin control over membership", "Best for: intranet portals, publishing sites"),
				column("🔗  M365 Group-Connected", "Team Sites & Teams-Connected Sites",
					"M365 Group owners → site Owners", "M365 Group members → site Members", "Visitors group still SharePoint-only",
					"Membership managed via M365 or Teams", "Entra ID backs the group identity", "Best for: project teams, departments"),
			},
			Callout: "💡 Tip:  Teams-connected sites may show permissions as read-only in SharePoint — manage via Teams instead.",
			Notes:   "This is a key conceptual distinction. Communication sites use SharePoint groups. Team sites often have M365 group backing, which means membership is managed from M365/Entra.",
		},
		{
			Kind:  KindTable,
			Title: "Site Type → Permission Model",
			Table: table([]string{"Site Type", "Group Model", "Managed In", "Use Case"},
				row("Communication Site", "SharePoint Groups", "SharePoint Site Settings", "Intranet · Portal · News"),
				row("Team Site (no group)", "SharePoint Groups", "SharePoint Site Settings", "Classic · Standalone"),
				row("Team Site (M365 Group)", "M365 Group + SP Visitors", "M365 Admin / Entra ID", "Projects · Departments"),
				row("Teams-Connected Site", "Teams Owners/Members", "Microsoft Teams", "Team Channels · Collab"),
				row("Teams Channel Site", "Channel membership", "Microsoft Teams", "Private/Shared Channels"),
			),
			Notes: "Quick decision reference: which permission model applies based on site type.",
		},
		section("Sharing Links vs Permissions", "Collaboration actions vs durable access design", "🔗",
			"Transition: Sharing links are the other side of the access coin. Users create them daily — admins need to understand and govern them."),
		{
			Kind:  KindColumns,
			Title: "Permissions vs Sharing Links",
			Items: []Item{
				column("🛡️  Permissions (Governance)", "",
					"Durable access design at site/library/folder level", "Applied via groups for manageability", "Controlled by site owners and admins",
					"Auditable through site settings", "Persist until explicitly removed"),
				column("🔗  Sharing Links (Collaboration)", "",
					"Ad-hoc access at file/folder level", "Created by users as they collaborate", "Can be forwarded (People in org / Anyone)",
					"May bypass group governance if unchecked", "Can be revoked or set to expire"),
			},
			Callout: "🔍 Admin Question:  When a user reports access issues, always ask — \"Is access from a group or a link?\"  Check both sources.",
			Notes:   "Key distinction: Permissions = durable governance design. Sharing links = collaboration actions. In incidents, 'mystery access' often comes from a forgotten sharing link.",
		},
		{
			Kind:  KindColumns,
			Title: "Three Types of Sharing Links",
			Items: []Item{
				{Heading: "Anyone", Body: "No authentication required  ·  HIGH RISK", Accent: theme.RedAccent, Bullets: []string{
					"Works for anyone with the link", "Cannot audit who accessed", "Can set expiration & view-only", "May be disabled by policy"}},
				{Heading: "People in Your Organization", Body: "Internal users authenticate  ·  MEDIUM RISK", Accent: theme.Orange, Bullets: []string{
					"Works for all org members", "Forwarded links still work", "Users must sign in", "Good for broad internal sharing"}},
				{Heading: "Specific People", Body: "Named recipients authenticate  ·  LOW RISK", Accent: theme.Green, Bullets: []string{
					"Only specified people can access", "Requires authentication", "Fully auditable", "Works for internal & external"}},
			},
			Notes: "Deep-dive into the three primary sharing link types. Each has different authentication, auditability, and risk characteristics.",
		},
		{
			Kind:     KindCards,
			Title:    "Admin Controls for Sharing Links",
			Subtitle: "SharePoint admin center → Policies → Sharing",
			Items: []Item{
				card("Default Link Type", "Set org-wide default: Specific People (most restrictive), People in org (balanced), Anyone (least restrictive)"),
				card("⏱️ Link Expiration", "Set max days for Anyone links. Existing links keep their expiration if new setting is longer"),
				card("Link Permissions", "View only or View + Edit. Set separately for files & folders. Anyone links can be restricted"),
				card("Site-Level Override", "Per-site sharing can be MORE restrictive than org, never more permissive"),
			},
			Notes: "Show the admin controls available in SharePoint admin center for managing sharing links. Default link type, expiration, and permissions can all be configured.",
		},
		{
			Kind:     KindSteps,
			Title:    "SharePoint vs OneDrive Sharing Policy",
			Subtitle: "The sharing hierarchy: Org → SharePoint → OneDrive → Site",
			Items: []Item{
				step("🏛️", "Organization Level", "Sets maximum permissiveness"),
				step("SP", "SharePoint Admin", "Equal or more restrictive"),
				step("☁️", "OneDrive Admin", "Equal or more restrictive than SP"),
				step("Site", "Individual Site", "Most restrictive (per-site override)"),
			},
			Bullets: []string{
				"🔹 A site can NEVER be more permissive than the org-level setting",
				"🔹 OneDrive sharing can be equal or more restrictive than SharePoint — not more permissive",
				"🔹 Changing org-level setting affects existing sites only if they were using the old maximum",
				"🔹 External sharing level: Anyone > New & Existing Guests > Existing Guests > Only Org",
			},
			Notes: "Important relationship: OneDrive sharing is controlled alongside SharePoint. OneDrive can be equal or MORE restrictive than SharePoint, but never more permissive.",
		},
		section("Northwind Scenario", "Designing a permission model for the Contracts workflow", "📋",
			"Transition: Apply the theory to a realistic scenario — Northwind Contracts workflow."),
		{
			Kind:  KindColumns,
			Title: "📋  Scenario: Northwind Contracts Workflow",
			Items: []Item{
				column("Drafts Library", "Editors collaborate on contract drafts  ·  Broken Inheritance",
					"Restricted to contract editors", "Members can edit & upload", "Owners have full control"),
				column("Finals Folder", "Approved contracts for broad read access  ·  Unique Permissions",
					"Broad read access (Visitors)", "Only Owners can edit", "One folder with unique perms"),
				column("Confidential Folder", "Sensitive contracts (board-level only)  ·  Unique Permissions",
					"Board members only", "Strict need-to-know basis", "Unique permissions within library"),
			},
			Notes: "Paint the scenario: Northwind has a Contracts workflow with Drafts (editors collaborate) and Finals (broad read, restricted edit). Goal: isolate sensitive content in a dedicated library.",
		},
		{
			Kind:  KindCards,
			Title: "Permission Design Principles",
			Items: []Item{
				card("Broad at the Top, Restricted Below", "Keep site-level access simple. Isolate sensitive content in dedicated libraries or folders."),
				card("Groups Over Individuals", "Always use SharePoint groups or Entra ID groups. Never assign permissions to individual users."),
				card("✂️ Minimize Unique Scopes", "Every break costs manageability. Aim for library-level isolation, not file-by-file permissions."),
				card("Document the Model", "Record who has access and why. Review quarterly at minimum. Clean up stale access."),
			},
			Notes: "Four principles to guide permission design decisions. These apply beyond the Northwind scenario.",
		},
		section("Troubleshooting Access Issues", "The admin mindset for resolving 'Access Denied'", "🔧",
			"Transition: Now let's cover the practical troubleshooting skills needed for access issues."),
		{
			Kind:  KindSteps,
			Title: "Access Denied Troubleshooting Workflow",
			Items: []Item{
				step("1", "Identify the Boundary", "Where is the resource? Site → Library → Folder → File"),
				step("2", "Check Group Membership", "Is the user in Owners, Members, or Visitors?"),
				step("3", "Check Direct Permissions", "Any per-user or per-group assignment at this level?"),
				step("4", "Check Sharing Links", "Use 'Manage Access' panel to see active sharing links"),
				step("5", "Use 'Check Permissions'", "Site Settings → Check Permissions for definitive effective access"),
			},
			Callout: "💡 Pro Tip:  Encourage learners to take screenshots of each check. This builds evidence for escalation and helps document the resolution.",
			Notes:   "Five-step troubleshooting flow for access issues. This is a practical admin skill that learners will use in real environments.",
		},
		{
			Kind:  KindCards,
			Title: "⚠️  Top 5 Common Permission Failures",
			Items: []Item{
				card("Broken Inheritance Forgotten", "Permissions changed at library/folder level but not documented. New content inherits old scope."),
				card("Sharing Link Sprawl", "Users create 'Anyone' links freely. Access cannot be tracked or revoked without manual cleanup."),
				card("M365 Group vs SP Group Confusion", "Admin changes SharePoint group membership but actual access is driven by M365 group. Change has no effect."),
				card("Direct User Assignment", "Permissions granted to individual users instead of groups. Offboarding misses these direct grants."),
				card("Site vs File-Level Mismatch", "User has site access but file has unique permissions that exclude them. Or: user lacks site access but has a sharing link."),
			},
			Notes: "Real-world failure scenarios that admins encounter frequently. Each has a specific resolution path.",
		},
		section("Lab Preview", "Designing a Permission Model — Northwind Contracts", "🧪",
			"Transition: Lab preview — learners will implement the Northwind permission model."),
		{
			Kind:  KindSteps,
			Title: "🧪  Lab 04: Designing a Permission Model",
			Items: []Item{
				step("1", "Navigate to NW-Pxx-ProjectSite", "Open your assigned site in SharePoint"),
				step("2", "Create NW-Pxx-Contracts library", "New document library for contracts workflow"),
				step("3", "Break inheritance at library level", "Stop inheriting from site, set editor-only access"),
				step("4", "Create 'Finals' folder", "Add folder for approved contracts with unique permissions"),
				step("5", "Break inheritance at folder level", "Set broad read access; restrict edit to Owners only"),
				step("6", "Validate with Check Permissions", "Confirm effective access for test users"),
			},
			Callout: "⚠️ Shared Tenant Rule:  Work ONLY inside your NW-Pxx-ProjectSite. Do not modify tenant-wide settings or other participants' sites.",
			Notes:   "Lab preview with step-by-step tasks. Emphasize shared-tenant safety rules. Each participant works inside their own NW-Pxx-ProjectSite.",
		},
		{
			Kind:  KindCards,
			Title: "📌  Module 4 Summary",
			Items: []Item{
				card("Inheritance is your friend", "Use it by default; break only when necessary for isolation"),
				card("Groups over individuals", "SharePoint groups or Entra groups — never assign to individual users"),
				card("Know your sharing links", "Understand the risk profile: Anyone > People in Org > Specific People"),
				card("OneDrive follows SharePoint", "OneDrive sharing can be equal or more restrictive, never more permissive"),
				card("Troubleshoot systematically", "Boundary → Group membership → Direct perms → Sharing links → Check Permissions"),
				card("Document and review", "Record your permission model; audit quarterly to prevent scope sprawl"),
			},
			Notes: "Wrap up with key takeaways from the module.",
		},
		{
			Kind:  KindQuiz,
			Title: "❓  Knowledge Check",
			Items: []Item{
				qa("Why is breaking inheritance repeatedly considered risky in SharePoint?", ""),
				qa("On a group-connected team site, what drives SharePoint permissions?", ""),
				qa("When would you prefer SharePoint groups over individual user permissions?", ""),
				qa("What's the difference between 'People in your org' and 'Specific people' links?", ""),
				qa("What is the FIRST place you check for 'Access Denied' — and why?", ""),
			},
			Notes: "Interactive knowledge check to reinforce module content. Have learners discuss in pairs before sharing answers.",
		},
		closing("Module 4 Complete ✓",
			"Next → Module 5: Managing Metadata and the Term Store",
			"End of Module 4. Transition to Module 5: Managing Metadata and the Term Store.",
			"References:",
			"Manage Permission Scopes: learn.microsoft.com/sharepoint/manage-permission-scope",
			"Sharing & Permissions (Modern): learn.microsoft.com/sharepoint/modern-experience-sharing-permissions",
			"Manage Sharing Settings: learn.microsoft.com/sharepoint/turn-external-sharing-on-or-off",
		),
	},
)
