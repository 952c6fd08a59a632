package importer

// Template returns an annotated skeleton of the bulk-import file, suitable
// for writing to disk and filling in by hand.
func Template() string {
	return `# duetrack bulk-import file.
#
# Fields:
# - title:       (required) assignment title
# - description: (required) details
# - due_date:    (required) "YYYY-MM-DD HH:MM" in your configured timezone,
#                at least 5 minutes in the future
# - priority:    (optional) low | medium | high   (default: medium)
# - status:      (optional) pending | in_progress (default: pending)
assignments:
  - title: "Calculus problem set 4"
    description: "Chapters 6-7, show all working"
    due_date: "2026-09-14 23:59"
    priority: high
  - title: "Read lab safety handbook"
    description: "Sections 1-3"
    due_date: "2026-09-20 18:00"
    priority: low
`
}
