package content

import "github.com/northwind-training/coursegen/internal/theme"

var module09 = moduleDeck(9,
	"OneDrive for Business Administration",
	"Scenario: Project Northwind Intranet Modernization  ·  Day 3 of 3",
	[]Slide{
		{
			Kind:     KindCover,
			Subtitle: "Sharing  ·  Sync  ·  Storage  ·  Access control  ·  Lifecycle",
			Notes:    "Module 9 covers OneDrive for Business from a SharePoint admin perspective. OneDrive is built on SharePoint Online, so many controls live in the SharePoint admin center. We'll cover sharing, sync, storage, access control, and the deleted-user lifecycle.",
		},
		{
			Kind:  KindCards,
			Title: "Why Is OneDrive \"SharePoint Admin Work\"?",
			Items: []Item{
				card("🏗️ Same Platform", "OneDrive = personal site on SharePoint Online (-my.sharepoint.com)"),
				card("⚙️ Same Admin Center", "Sharing, sync, storage, access control — all in SharePoint admin center"),
				card("Tenant-Wide", "Policy changes affect every user's OneDrive immediately or within hours"),
				card("⚠️ Shared Tenant", "In training: observe first, trainer changes policies only"),
			},
			Notes: "Key insight: OneDrive for Business is a personal site collection hosted on SharePoint Online. Each user's OneDrive lives under {tenant}-my.sharepoint.com. SharePoint admins manage OneDrive policies via the same admin center used for all SPO settings.",
		},
		bullets("Learning Outcomes",
			"Four learning outcomes — architecture relationship, where settings live, five policy areas, and the user lifecycle for departures.",
			"Explain how OneDrive for Business relates to SharePoint Online",
			"Locate OneDrive admin settings in the SharePoint admin center",
			"Describe key policy areas: sharing, sync, storage, retention, access control",
			"Explain the deleted-user OneDrive lifecycle and restore options",
		),
		{
			Kind:  KindSteps,
			Title: "OneDrive Architecture: Admin Mental Model",
			Items: []Item{
				step("1", "Microsoft 365 Tenant", "Identity, licensing and policy boundary"),
				step("2", "SharePoint Online", "The platform hosting every site collection"),
				step("3", "{tenant}-my.sharepoint.com", "Host for all personal sites"),
				step("4", "User OneDrive", "User A, User B, User C: one site collection each"),
			},
			Callout: "💡 Each user's OneDrive is a SharePoint site collection. SharePoint policies, retention, and eDiscovery all apply.",
			Notes:   "Each OneDrive is a personal site collection under {tenant}-my.sharepoint.com. This means SharePoint permission model, retention, eDiscovery, sensitivity labels, and DLP all work on OneDrive content — it's the same platform.",
		},
		section("Where OneDrive Settings Live", "Section 1", "📍",
			"Transition to admin center settings."),
		{
			Kind:  KindTable,
			Title: "OneDrive Settings in the SharePoint Admin Center",
			Table: table([]string{"Area", "What it controls", "Where"},
				row("Sharing", "Organization-wide sharing level and default link type", "Sharing page"),
				row("Sync", "Tenant sync controls, hide Sync button option", "Settings → Sync"),
				row("Storage Limit", "Default quota for all new and existing users", "Settings → Storage limit"),
				row("Retention", "Days to keep deleted user's OneDrive (30–3650)", "Settings → Retention"),
				row("Access Control", "Unmanaged devices, network location policy", "Access control page"),
				row("Notifications", "External sharing notification settings", "Settings → Notifications"),
			),
			Notes: "Six key setting areas in the SharePoint admin center. From Microsoft docs: 'Many organizations use OneDrive without changing any of the options. To change these settings, use the SharePoint admin center.' Each setting area has a specific location in the admin center.",
		},
		section("Sharing & Sync Controls", "Section 2", "🔗",
			"Transition to sharing and sync."),
		{
			Kind:  KindColumns,
			Title: "Sharing Controls: Policy vs User Action",
			Intro: "Tenant policy sets the boundaries → Users share within those boundaries",
			Items: []Item{
				column("Admin Policy (Boundary)", "",
					"Set organization-wide sharing level", "Configure default sharing link type", "Control 'Anyone' link expiration",
					"Restrict external sharing by domain", "OneDrive sharing ≤ SharePoint level"),
				column("User Action (Within Boundary)", "",
					"Share files and folders with others", "Choose link type (within policy limits)", "Grant Edit or View permissions",
					"Share internally or externally (if allowed)", "Manage shared file access"),
			},
			Notes: "Sharing controls mirror what we covered in Module 2, but here we emphasize the OneDrive angle. Note: OneDrive sharing level can never be MORE permissive than the SharePoint organization level. For training, keep sharing internal-only unless the trainer authorizes external test.",
		},
		{
			Kind:  KindColumns,
			Title: "Sync Controls: Shortcuts vs Sync Button",
			Items: []Item{
				{Heading: "✅  Shortcuts (Recommended)", Accent: theme.Green, Bullets: []string{
					"Add shortcut to OneDrive", "Linked to user account (follows across devices)", "Only the specific folder is synced",
					"More performant than full library sync", "Microsoft-recommended approach",
				}},
				{Heading: "⚠️  Sync Button (Legacy Approach)", Accent: theme.Orange, Bullets: []string{
					"Syncs entire library to the device", "Device-bound (doesn't follow the user)", "Can cause large sync queues",
					"Existing syncs not affected if hidden", "Admin can hide via Set-SPOTenant",
				}},
			},
			Callout: "Set-SPOTenant -HideSyncButtonOnTeamSite $true",
			Notes:   "From Microsoft docs: 'It's recommended to use shortcuts instead of using the Sync button. Shortcuts are more performant because rather than syncing the entire library, only the specific folder is synced. Additionally, because shortcuts are added to a user's OneDrive rather than to the device, it's easier to access content across all devices.' Admin command: Set-SPOTenant -HideSyncButtonOnTeamSite $true to hide the Sync button.",
		},
		section("Storage Policies & Access Control", "Section 3", "💾",
			"Transition to storage and access control."),
		{
			Kind:  KindCards,
			Title: "Storage Policies: Quotas and Risks",
			Intro: "Storage management has three layers:",
			Items: []Item{
				card("License-Based Maximum", "Determined by the user's license plan (e.g., 1 TB or 5 TB)"),
				card("Tenant Default", "Admin sets a default storage limit for all new/existing users"),
				card("Per-User Override", "Admin can set a custom quota for specific individual users"),
			},
			Callout: "⚠️  Risk: If you reduce the default storage limit below a user's current usage, their OneDrive becomes read-only until they reduce their storage or you increase the limit.",
			Notes:   "Three-layer storage model. From Microsoft docs: if you reduce storage below current usage, the OneDrive may become read-only. Set default storage via SharePoint admin center → Settings → Storage limit. Per-user overrides are useful for executives or special projects.",
		},
		{
			Kind:     KindCards,
			Title:    "Device Access Control: Unmanaged Devices",
			Subtitle: "SharePoint admin center → Access control → Unmanaged devices",
			Items: []Item{
				{Heading: "Allow Full Access", Body: "Users can access from any device, any app. No restrictions.", Accent: theme.Green},
				{Heading: "Allow Limited (Web-Only)", Body: "Browser only — no download, print, or sync. Editing can be restricted.", Accent: theme.Orange},
				{Heading: "Block Access", Body: "No access from unmanaged devices. Most restrictive.", Accent: theme.RedAccent},
			},
			Callout: "⏱️  Changes can take up to 24 hours to take effect. Doesn't impact users already signed in. Uses Entra Conditional Access under the hood.",
			Notes:   "Three access tiers for unmanaged devices. From Microsoft docs: 'If you revert back to Allow Full Access, it could take up to 24 hours for the changes to take effect.' These controls use Microsoft Entra Conditional Access policies. Recommendation: also block apps that don't use modern authentication to prevent bypass.",
		},
		{
			Kind:  KindTable,
			Title: "Limited Access: Advanced Configurations",
			Table: table([]string{"Parameter", "Effect", "Use When"},
				row("-AllowEditing $false", "Prevents editing Office files in browser", "Strict view-only needed"),
				row("-ReadOnlyForUnmanagedDevices $true", "Entire site read-only for impacted users", "Full protection required"),
				row("-LimitedAccessFileType OfficeOnlineFilesOnly", "Preview only Office files; other files blocked", "Maximum security"),
				row("-LimitedAccessFileType WebPreviewableFiles", "Preview all files the browser can render (default)", "Balance security/usability"),
			),
			Notes: "PowerShell parameters for fine-tuning limited access. From Microsoft docs: '-LimitedAccessFileType WebPreviewableFiles (default) allows users to preview Office files. Warning: this option is known to cause problems with PDF and image file types.' OfficeOnlineFilesOnly is the most secure but may block legitimate file types.",
		},
		section("User Lifecycle: Departures & Restore", "Section 4", "👤",
			"Transition to the user lifecycle."),
		{
			Kind:     KindSteps,
			Title:    "Deleted User OneDrive Lifecycle",
			Subtitle: "What happens when a user is deleted from Microsoft 365?",
			Items: []Item{
				step("Day 0", "User deleted from M365 admin center", "Account deletion synced to SharePoint"),
				step("Day 1–30*", "Retention period (default 30 days)", "Manager gets access; shared content still accessible"),
				step("Day 23*", "7-day warning email sent to manager or secondary owner", "Reminder before deletion"),
				step("After retention", "OneDrive enters deleted state (93 days)", "Only SharePoint Admin can restore"),
			},
			Callout: "* Configurable: 30–3,650 days (Settings → Retention in SharePoint admin center)",
			Notes:   "From Microsoft docs: 'The default retention period for OneDrive is 30 days, but you can change this in the SharePoint admin center (30 to 3650 days).' Manager gets automatic access by default. After the retention period, OneDrive remains in a deleted state for 93 days — only a SharePoint Administrator can restore it during that window.",
		},
		{
			Kind:     KindColumns,
			Title:    "Access Delegation: Manager & Secondary Owner",
			Subtitle: "When a user is deleted, who gets automatic access to their OneDrive?",
			Items: []Item{
				column("Manager (Primary)", "",
					"Manager specified in Entra ID profile", "Gets email notification on user deletion",
					"Automatic access to the user's OneDrive", "Gets 7-day reminder before deletion"),
				column("Secondary Owner (Fallback)", "",
					"Configured in SharePoint admin center", "More features → User profiles → My Sites",
					"Used when no manager is set", "Also receives email notification"),
			},
			Callout: "⚠️  If neither manager nor secondary owner is set, no one has automatic access.",
			Notes:   "From Microsoft docs: 'By default, when a user is deleted, the user's manager is automatically given access to the user's OneDrive.' If no manager is set, the secondary owner configured in My Site Settings is used. If neither is configured, no one gets automatic access and the OneDrive will eventually be deleted without anyone being notified.",
		},
		{
			Kind:  KindColumns,
			Title: "Restoring a Deleted OneDrive",
			Items: []Item{
				{Heading: "During Retention Period (default 30 days)", Accent: theme.Green, Bullets: []string{
					"OneDrive still accessible", "Manager/secondary owner has access",
					"Files can be downloaded/moved", "Re-create user account restores access",
				}},
				{Heading: "After Retention (93-day deleted state)", Accent: theme.Orange, Bullets: []string{
					"Only SharePoint Admin can restore", "Use Restore-DeletedSite or admin center",
					"Shared content no longer accessible", "Last chance before permanent deletion",
				}},
				{Heading: "After 93-Day Window", Accent: theme.RedAccent, Bullets: []string{
					"Permanently deleted", "Cannot be recovered by admin",
					"Exception: Purview retention policies or eDiscovery holds may override", "Plan ahead!",
				}},
			},
			Notes: "Three restore windows. During the retention period, it's easy — files are still accessible. After retention, SPO admin can restore within the 93-day deleted state. After that, it's gone — unless Purview retention policies or eDiscovery holds were in place. From Microsoft docs: 'The OneDrive remains in a deleted state for 93 days and can only be restored by a SharePoint Administrator.'",
		},
		{
			Kind:  KindCards,
			Title: "OneDrive + Purview: Retention & eDiscovery Holds",
			Intro: "Purview retention policies and eDiscovery holds can override the standard OneDrive deletion timeline.",
			Items: []Item{
				card("Purview Retention Policy", "If a retention policy covers OneDrive, content is retained for the full policy period — even if the user is deleted."),
				card("eDiscovery Hold", "If an eDiscovery hold is placed on a user's OneDrive, content is preserved regardless of deletion or retention settings."),
				card("Unlicensed Account Archive", "OneDrive accounts without a valid license are automatically archived on day 93. Holds are still honored."),
			},
			Notes: "Important for compliance-focused organizations. Purview retention policies keep content beyond the OneDrive retention setting. eDiscovery holds are the strongest — they override everything. From Microsoft docs: 'All OneDrive accounts that don't have a valid OneDrive license are automatically archived on their 93rd unlicensed day. Retention settings, retention policies, eDiscovery, and all holds are still honored.'",
		},
		section("Common Support Scenarios", "Section 5", "🛠️",
			"Transition to support scenarios."),
		{
			Kind:  KindTable,
			Title: "Common Admin Support Scenarios",
			Table: table([]string{"Symptom", "Where to look"},
				row("Sync missing / not working", "Check: is the Sync button hidden? Is the device managed? Check sync health reports in Apps Admin Center."),
				row("Blocked download on unmanaged device", "Expected if limited access is set. Verify policy in Access control page. Changes take up to 24 hours."),
				row("User's OneDrive read-only", "Storage quota exceeded. Increase quota or ask user to free space."),
				row("Departed user's files needed", "Check retention period setting. Access as manager or SPO admin. 93-day deleted state = admin restore."),
				row("External sharing not working", "OneDrive level ≤ SPO level. Check both org level and site level. Verify user hasn't been restricted."),
			),
			Notes: "Five common support scenarios that SharePoint admins encounter with OneDrive. Walk through each one and discuss how participants would investigate in a real environment. Sync issues are very common — point participants to the sync health reports.",
		},
		section("Lab 9: OneDrive Administration", "Section 6", "🔬",
			"Transition to the lab."),
		{
			Kind:  KindSteps,
			Title: "Lab 9: Hands-On Exercises",
			Items: []Item{
				step("Task 1", "Document tenant settings", "Record current Sharing, Sync, Storage, Retention values"),
				step("Task 2", "Observe access control", "Review unmanaged device policy settings (read-only)"),
				step("Task 3", "Internal sharing test", "Share a OneDrive file with another participant"),
				step("Task 4", "Verify sharing behavior", "Confirm recipient can access the shared file"),
				step("Task 5", "Complete M09 worksheet", "Document observations in your participant pack"),
			},
			Callout: "⏱️  Estimated time: 25–35 min",
			Notes:   "Lab is observation-heavy by design — OneDrive policies are tenant-wide and we don't want participants changing settings in a shared tenant. The sharing test (tasks 3-4) is safe because it only creates an internal share between participants.",
		},
		bullets("Lab 9: Validation Checklist",
			"Six validation checkpoints. Tasks 1-2 are observation/documentation. Tasks 3-4 are hands-on sharing verification. Task 5 is worksheet completion. Checkpoint 6 is a knowledge check about the deleted-user lifecycle.",
			"Documented current Sharing level, Sync settings, Storage limit, and Retention value",
			"Reviewed Access control page — can describe unmanaged device policy options",
			"Successfully shared a OneDrive file internally with another participant",
			"Confirmed the recipient could access and open the shared file",
			"Completed M09 worksheet in participant pack",
			"Can explain the 30-day default + 93-day deleted state lifecycle",
		),
		{
			Kind:  KindTable,
			Title: "Lab 9: Common Issues & Troubleshooting",
			Table: table([]string{"Issue", "Likely cause", "Fix"},
				row("Can't find Sync settings", "Ensure you're in the SharePoint admin center", "Go to Settings → Sync (not OneDrive admin)"),
				row("Sharing link doesn't work", "Recipient may be external or unlicensed", "Verify sharing level allows the link type used"),
				row("Storage limit shows 0", "Tenant default may not be set", "Settings → Storage limit → set default or per-user"),
				row("Access control page empty", "Requires SharePoint admin or higher role", "Confirm role assignment in M365 admin center"),
			),
			Notes: "Common lab issues. The most frequent confusion is finding the right settings page — everything is in the SharePoint admin center, not a separate OneDrive admin portal. Sharing issues usually relate to link type vs sharing level mismatch.",
		},
		bullets("Key Takeaways",
			"Seven key takeaways. Core message: OneDrive IS SharePoint — the admin surface is the same. The deleted-user lifecycle is a common exam/support topic. Shortcuts vs Sync is a practical recommendation admins should push to their org.",
			"OneDrive for Business = personal site collection on SharePoint Online",
			"All key OneDrive policies are managed via the SharePoint admin center",
			"Six setting areas: Sharing, Sync, Storage, Retention, Access control, Notifications",
			"Shortcuts > Sync button — Microsoft-recommended for file access",
			"Unmanaged device controls use Entra Conditional Access (24h propagation)",
			"Deleted-user OneDrive: default 30 days retention + 93 days deleted state",
			"Purview retention policies and eDiscovery holds can override deletion",
		),
		{
			Kind:  KindQuiz,
			Title: "Knowledge Check",
			Items: []Item{
				qa("Where do OneDrive admin settings live?", ""),
				qa("What is the recommended way for users to access shared folders — Shortcuts or Sync?", ""),
				qa("What happens if you reduce the storage limit below a user's current usage?", ""),
				qa("How many days is the default OneDrive retention for deleted users?", ""),
				qa("After the retention period, how long does the 'deleted state' window last?", ""),
			},
			Notes: "Answers: Q1 — SharePoint admin center (Sharing, Settings, Access control pages). Q2 — Shortcuts (Add shortcut to OneDrive) — more performant, follows the user across devices. Q3 — The user's OneDrive becomes read-only until they reduce usage or admin increases quota. Q4 — 30 days (configurable 30–3650). Q5 — 93 days — only a SharePoint Administrator can restore during this window.",
		},
		{
			Kind:  KindTable,
			Title: "PowerShell Quick Reference: OneDrive Admin",
			Table: table([]string{"Task", "Command"},
				row("Hide Sync button", "Set-SPOTenant -HideSyncButtonOnTeamSite $true"),
				row("Set retention (days)", "Set-SPOTenant -OrphanedPersonalSitesRetentionPeriod 365"),
				row("Set default storage (MB)", "Set-SPOTenant -OneDriveStorageQuota 5242880"),
				row("Set per-user storage", "Set-SPOSite -Identity https://tenant-my.sharepoint.com/personal/user_domain_com -StorageQuotaWarningLevel 4194304 -StorageQuota 5242880"),
				row("Block unmanaged devices", "Set-SPOTenant -ConditionalAccessPolicy AllowLimitedAccess"),
			),
			Notes: "PowerShell reference for common OneDrive admin tasks. All use Set-SPOTenant or Set-SPOSite from the SharePoint Online Management Shell. These are informational — participants should not run these in the shared training tenant.",
		},
		closing("End of Module 9",
			"Up Next  →  Module 10: Automating SharePoint Administration",
			"Module 9 complete. Next up: Module 10 dives into PowerShell and automation for SharePoint administration — connecting to SPO, scripting common tasks, and the admin toolkit.",
		),
	},
)
