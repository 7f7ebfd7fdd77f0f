package pack

// Fixed text of the packs. Lines mentioning NW-Pxx are literal: they refer
// to the naming rule, not to one participant.

var participantRules = []string{
	"Only change content/settings inside your own NW-Pxx artifacts.",
	"Treat tenant-wide settings as Trainer-only.",
	"Do not invite external guests unless the trainer explicitly asks.",
	"If you break inheritance, keep unique permissions minimal (library boundary first).",
}

var participantChecklist = []string{
	"Confirm you can access SharePoint admin center (read-only verification is fine).",
	"Confirm your NW-Pxx-ProjectSite URL is recorded in the tracker.",
	"Module 4: Create NW-Pxx-Contracts library and folders 01-Drafts / 02-InReview / 03-Final.",
	"Module 4: Break inheritance at library, and at one folder only (03-Final).",
	"Validate access using Check Permissions and Manage access.",
	"Module 5: Create (or use fallback) NW-Pxx-ContractType term set + add managed metadata column.",
	"Module 6: Upload search seed docs + validate you can find them via search.",
	"Module 7: Create NW-Pxx-AppRequests list + apply column and view formatting JSON.",
	"Module 8: Upload FAKE compliance doc + apply sensitivity/retention labels (if published) + complete worksheet.",
	"Module 9: Observe OneDrive tenant settings + complete worksheet; do internal-only sharing test.",
	"Module 10: Run PowerShell reporting (SPO) scoped to NW-Pxx + export CSV; optional Graph connect if trainer approves.",
	"Module 11: Complete ops worksheets (incident triage, lifecycle, external sharing governance) + provide a change request summary.",
	"Module 12 (optional): Build an AppRequests approval flow + customize the list form (Power Apps) + record governance notes.",
}

// The short forms fit on one PDF or slide line.
var participantRulesShort = []string{
	"Only work inside your own NW-Pxx artifacts.",
	"Tenant-wide settings are Trainer-only.",
	"External guest invites only if trainer approves.",
	"Minimize unique permissions; use library boundary first.",
}

var participantSlideRules = []string{
	"Work only inside your own NW-Pxx content.",
	"No tenant-wide changes unless trainer-led.",
	"Keep unique permissions minimal (library boundary first).",
}

// task is one row of the participant tracker or the trainer checkpoints.
type task struct {
	Module string
	Text   string
}

var trackerTasks = []task{
	{"M3", "Confirm NW-Pxx-ProjectSite URL"},
	{"M4", "Create NW-Pxx-Contracts library"},
	{"M4", "Break inheritance at library"},
	{"M4", "Break inheritance at one folder only (03-Final)"},
	{"M4", "Validate access: Check Permissions"},
	{"M4", "Remove any ad-hoc sharing links"},
	{"M5", "Create NW-Pxx-ContractType term set (or local fallback)"},
	{"M5", "Add NW-Pxx-ContractType column + tag 3 docs"},
	{"M6", "Upload seed docs to NW-Pxx-Contracts"},
	{"M6", "Validate search finds seed docs"},
	{"M7", "Create NW-Pxx-AppRequests list + apply formatting"},
	{"M8", "Apply sensitivity/retention labels to fake doc"},
	{"M9", "Complete OneDrive settings observation worksheet"},
	{"M10", "Export NW-Pxx sites + users reports (PowerShell)"},
	{"M11", "Complete ops worksheets + change request summary"},
	{"M12", "Build approval flow + customize form (Power Platform)"},
}

var trainerChecks = []task{
	{"M4", "NW-Pxx-Contracts exists; inheritance broken at library"},
	{"M4", "Only one folder has unique permissions (03-Final)"},
	{"M5", "NW-Pxx-ContractType term set exists (or local fallback)"},
	{"M5", "Managed metadata column added + 3 docs tagged"},
	{"M6", "Seed docs uploaded + query works (bookmark optional)"},
	{"M7", "App governance artifact uploaded"},
	{"M8", "Fake compliance content available"},
	{"M9", "OneDrive test file available"},
	{"M10", "PowerShell reporting outputs collected (CSV)"},
	{"M11", "Ops worksheets collected; governance change requests documented"},
	{"M12", "Approval flow + Power Apps form customization completed (optional)"},
}

type link struct {
	Name string
	URL  string
}

var referenceLinks = []link{
	{"Manage permission scopes", "https://learn.microsoft.com/en-us/sharepoint/manage-permission-scope"},
	{"Modern sharing & permissions", "https://learn.microsoft.com/en-us/sharepoint/modern-experience-sharing-permissions"},
	{"Shareable links", "https://learn.microsoft.com/en-us/sharepoint/shareable-links-anyone-specific-people-organization"},
	{"Troubleshoot Access Denied", "https://learn.microsoft.com/en-us/troubleshoot/sharepoint/administration/access-denied-or-need-permission-error-sharepoint-online-or-onedrive-for-business"},
}

var trainerRules = []string{
	"Participants only modify their own NW-Pxx artifacts.",
	"Tenant-wide settings and policy changes are trainer-led only.",
	"Guest invitations: keep to a minimum; use trainer-prepared accounts if possible.",
	"Term store is tenant-wide: participants must only create NW-Pxx-prefixed term groups/sets.",
}

var trainerRulesShort = []string{
	"Participants only modify their own NW-Pxx artifacts.",
	"Tenant-wide policy changes are trainer-led only.",
	"Term store: NW-Pxx naming only; no cross-editing.",
}

var trainerSlideRules = []string{
	"Participants only modify their own NW-Pxx artifacts.",
	"Tenant-wide settings/policies are trainer-led only.",
	"Term store is tenant-wide: NW-Pxx naming only.",
}

var trainerCheckpoints = []string{
	"M4: Library boundary + one folder unique permissions",
	"M5: Term group/set created (or local fallback) + managed metadata column",
	"M6–M9: use seed content; keep policy changes trainer-only",
	"M10: PowerShell exports only; NW-Pxx scoped",
	"M11: Ops worksheets completed; change requests documented",
	"M12 (optional): Approval flow + Power Apps custom form; governance notes captured",
}

// runbook is a titled list of trainer steps. Numbered runbooks print as
// ordered lists.
type runbook struct {
	Title    string
	Numbered bool
	Steps    []string
}

var trainerRunbooks = []runbook{
	{"Module 4 quick runbook (Permissions)", true, []string{
		"Confirm each participant has NW-Pxx-ProjectSite and can access as owner.",
		"Remind: break inheritance at library, and at one folder only (03-Final) to keep scopes low.",
		"If anyone locks themselves out: re-add as Full Control at library level (site owner/admin).",
		"Keep sharing link drills internal-only unless you explicitly approve external tests.",
	}},
	{"Module 5 quick runbook (Term store + metadata)", true, []string{
		"Confirm who has Term store admin / Group manager permissions.",
		"Enforce NW-Pxx naming in term store (NW-Pxx-TermGroup, NW-Pxx-ContractType).",
		"If participants cannot create term groups: instruct them to use the local term set fallback.",
		"Spot-check: term set is Available for tagging; column created in NW-Pxx-Contracts; documents tagged.",
	}},
	{"Modules 6–11 prep reminders (seed content)", false, []string{
		"Module 6: ensure indexing time is accounted for; use unique phrases in seed docs.",
		"Module 6: bookmarks are immediate after publishing; acronyms can take up to a day (plan accordingly).",
		"Module 7: list formatting exercises are participant-safe; Apps/API access are trainer-led only.",
		"Module 7: do not approve API access requests in a shared training tenant.",
		"Module 8: use FAKE content only; avoid real personal data.",
		"Module 9: OneDrive settings are tenant-wide; treat as trainer-led if changed.",
		"Module 10: PowerShell is powerful—keep participants on read-only reporting and ensure outputs are NW-Pxx scoped.",
		"Module 11: Operations is largely observe/document; use worksheets to drive safe change requests.",
	}},
	{"Module 10 quick runbook (PowerShell/automation)", true, []string{
		"Confirm participants know their tenant admin URL and NW-Pxx site URL.",
		"Emphasize read-only reporting first (Get-SPOSite, Get-SPOUser) + export to CSV.",
		"Reinforce scoping: filter/export only NW-Pxx artifacts; no tenant-wide changes.",
		"If Graph PowerShell is used: keep scopes minimal and avoid write operations unless explicitly assigned.",
	}},
	{"Module 11 quick runbook (Operations at scale)", true, []string{
		"Lead with Service health + Message center checks before deep troubleshooting.",
		"For access issues: use Check Permissions and validate identity vs link type.",
		"For lifecycle topics: keep delete/restore actions trainer-led; participants document guardrails.",
		"For external sharing governance: review link types/defaults; keep policy changes trainer-led.",
		"Collect outputs: worksheets + any NW-Pxx-scoped CSV reports.",
	}},
}

// legacyTrainerTemplates are runbook names written by earlier generations
// of the trainer pack. They are removed so only the current runbook is left.
var legacyTrainerTemplates = []string{
	"Trainer-Module-4-5-Runbook.txt",
	"Trainer-Modules-04-09-Runbook.txt",
	"Trainer-Modules-04-10-Runbook.txt",
	"Trainer-Modules-04-11-Runbook.txt",
}
