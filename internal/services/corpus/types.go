package corpus

// Episode is one podcast installment, loaded once from its transcript
// file and immutable thereafter
type Episode struct {
	Guest   string // display name, free text
	Content string // metadata-stripped transcript body
	Path    string // filesystem location of the source file
}

// Match is a search hit within an episode transcript
type Match struct {
	Guest     string
	Path      string
	Snippet   string
	Timestamp string // HH:MM:SS token from the snippet, empty when absent
	Position  int    // byte offset of the earliest term match
}
