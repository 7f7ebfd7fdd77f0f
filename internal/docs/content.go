package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with coursegen",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "course.yaml fields, defaults, and environment overrides",
		Content: topicConfig,
	},
	{
		Name:    "decks",
		Title:   "Slide Decks",
		Summary: "The ten course decks, their layouts, and handouts",
		Content: topicDecks,
	},
	{
		Name:    "packs",
		Title:   "Participant and Trainer Packs",
		Summary: "Roster, per-participant files, and the trainer pack",
		Content: topicPacks,
	},
	{
		Name:    "outputs",
		Title:   "Output Directory",
		Summary: "Layout of the output directory, the manifest, and verify",
		Content: topicOutputs,
	},
}

const topicQuickstart = `Quick Start
===========

1. Create a course config in an empty directory:

    mkdir sharepoint-course && cd sharepoint-course
    coursegen init

   This writes course.yaml with every field set to its default.

2. Preview what a build will write:

    coursegen build --dry-run

3. Build everything (10 decks, their handouts, one pack per participant
   and the trainer pack):

    coursegen build

4. Check the result:

    coursegen status
    coursegen verify

CLI Commands
------------

  coursegen init                    Write an example course.yaml
  coursegen build                   Build every configured output
  coursegen build --only m05,P03    Build only the named decks, participants or trainer
  coursegen build --no-packs        Skip participant and trainer packs
  coursegen build --no-decks        Skip decks and handouts
  coursegen build --dry-run         Print the job plan without writing files
  coursegen list                    List the course decks
  coursegen status                  Show the last build
  coursegen verify                  Check generated files against the manifest
  coursegen inspect <file>          Print slide texts of a .pptx or rows of a .xlsx
  coursegen docs                    List documentation topics
  coursegen docs <topic>            Show a documentation topic

Global flags: --config <path> uses a specific course.yaml instead of
searching upward from the working directory. --verbose writes debug logs to
stderr.

A build can be interrupted with Ctrl-C. The manifest records the run as
interrupted; running coursegen build again starts a new run.
`

const topicConfig = `Configuration Reference
=======================

The course is configured in course.yaml. coursegen looks for it in the
working directory and then in each parent directory.

Top-level fields
----------------

  course-title     string    Required. Shown on covers, footers and handouts.
  scenario         string    Required. Lab scenario name used in packs.
  date             string    Pack date, YYYY-MM-DD. Default: 2026-02-09.
  output-dir       string    Required. Relative to the config file. Default: out.
  decks            list      Deck IDs to build. Empty means all.
  handouts         bool      Build speaker notes and outlines. Default: true.
  participants     object    Roster settings, see below.

Participant fields
------------------

  count            int       Number of generated IDs, 1 to 99. Default: 10.
  id-prefix        string    Prefix of generated IDs. Default: P.
  pattern          string    Regex every ID must match (anchored). Default: P\d{2}.
  trainer-id       string    Folder name of the trainer pack. Default: TRAINER.
  roster           string    Optional .xlsx workbook. IDs are read from
                             column A of the first sheet; a "Participant ID"
                             header row is skipped.

When roster is set, count and id-prefix are ignored.

Validation Rules
----------------

- course-title, scenario and output-dir must not be empty.
- date must be a real calendar date in YYYY-MM-DD form.
- Deck IDs must be known (see coursegen list) and listed once.
- pattern must compile. Generated IDs must match it.
- trainer-id must not match pattern and must not contain path separators.
- roster must name an .xlsx file.

Environment Overrides
---------------------

These variables take precedence over course.yaml. A .env file next to
course.yaml is loaded first.

  COURSEGEN_OUTPUT_DIR      output-dir
  COURSEGEN_DATE            date
  COURSEGEN_PARTICIPANTS    participants.count
  COURSEGEN_HANDOUTS        handouts (true/false)

Example Config
--------------

    course-title: Modern SharePoint Online for Administrators (3-Day, 2026 aligned)
    scenario: Project Northwind Intranet Modernization
    date: 2026-02-09
    output-dir: out
    decks: [intro, m01, m02]
    handouts: true
    participants:
      count: 12
      id-prefix: P
      pattern: 'P\d{2}'
      trainer-id: TRAINER
`

const topicDecks = `Slide Decks
===========

The course has ten decks: the course introduction and modules 1 to 9.
Run coursegen list to see IDs, titles and slide counts.

Deck keys
---------

A deck can be named by ID (m05), number (5) or label (module-5). The
introduction is intro. The same keys work in the decks field of
course.yaml and in build --only.

Layouts
-------

Every slide is drawn on a blank 16:9 slide with the course palette:

  cover      Dark background, module badge, title and day line.
  agenda     Numbered rows with time slots.
  bullets    Title bar and a bulleted text frame.
  cards      Colored cards with heading and body, up to four per row.
  columns    Side-by-side comparison columns.
  table      Header row plus data rows; fonts shrink to fit every cell.
  section    Full-bleed divider with an icon and subtitle.
  steps      Numbered step badges for labs.
  quiz       Knowledge-check questions with answers.
  closing    Summary lines and next steps.

Every slide, cover included, carries a footer bar with the module label,
deck title and a "n / total" counter. The total is the real slide count.

Handouts
--------

With handouts enabled, each deck also produces:

  Module-NN-Speaker-Notes.docx   One heading per slide, its notes and text.

Speaker notes are also written to the notes pane of every slide in the
.pptx.
  Module-NN-Outline.pdf          Slide titles and bullets with page numbers.

The introduction uses the 00-Course-Introduction stem instead of Module-NN.
`

const topicPacks = `Participant and Trainer Packs
=============================

Every participant gets a folder under packs/ named after their ID. Lab
resources are named from the ID so participants never collide:

  NW-P03-ProjectSite     NW-P03-Contracts     NW-P03-TermGroup
  NW-P03-ContractType    NW-P03-AppRequests

Participant files
-----------------

  P03-Training-Pack.docx   Rules, artifact names, checklist and links.
  P03-Training-Pack.pdf    Printable version of the same content.
  P03-Training-Pack.pptx   Three slides for the participant's own screen.
  P03-Training-Pack.xlsx   Tracker sheet (one row per lab task) and Links.
  TXT-Templates/           Worksheets for modules 4 to 12 with the ID filled in.

Trainer files
-------------

The trainer pack lives in packs/<trainer-id>/:

  Trainer-Training-Pack.docx   Ground rules, checkpoints and runbooks.
  Trainer-Training-Pack.pdf    Printable version.
  Trainer-Training-Pack.pptx   Ground rules and roster slides.
  Trainer-Training-Pack.xlsx   Roster, Module Checks and Issue Log sheets.
  TXT-Templates/               Announcements, modules 4-12 runbook, roster.

Runbook files left by older generations of the trainer pack are removed
from TXT-Templates on every build.

The pack date comes from the date field, so rebuilding gives the same text.
`

const topicOutputs = `Output Directory
================

A build writes into output-dir:

  out/
  ├── decks/               00-Course-Introduction.pptx, Module-NN-Slides.pptx
  ├── handouts/            Speaker notes (.docx) and outlines (.pdf)
  ├── packs/
  │   ├── P01/ ... Pnn/    Participant packs
  │   └── TRAINER/         Trainer pack
  └── .coursegen/
      ├── manifest.json    Last run: ID, status, jobs, artifacts
      └── timing.json      Start, end and duration of every job in the last run

Every file is written to a temporary name and renamed into place, so an
interrupted build never leaves half-written documents.

Manifest
--------

The manifest lists every generated file with its path relative to the
output directory, its kind (pptx, docx, pdf, xlsx, txt), the job that
wrote it and its size. A partial build (--only) keeps the entries of
earlier builds and replaces the ones it rewrites.

Run status is one of: running, completed, failed, interrupted.

Verify
------

coursegen verify reads the manifest and checks each file:

- the file exists,
- its size matches the manifest,
- its content matches its kind (Office files are zip containers whose
  [Content_Types].xml declares the presentation, document or workbook
  main part, PDFs start with a PDF header, worksheets are plain text).

Each problem is printed on its own line and the command exits non-zero.
`
