package antispam

// HoneypotField is the name of the bot-trap input on every public form. The
// front-end renders it off-screen with tabindex=-1 and autocomplete=off, so a
// person never fills it while a form-filling bot usually does.
const HoneypotField = "website"

// Tripped reports whether the bot trap caught something. Any non-empty value,
// whitespace included, counts.
func Tripped(honeypot string) bool { return honeypot != "" }
