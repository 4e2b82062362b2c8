package workflow

// Icon points the host at an image to render beside a result.
type Icon struct {
	Path string `json:"path"`
}

// Item is a single result row rendered by the host application.
// Items are immutable once added to a client.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
	Arg      string `json:"arg,omitempty"`
}

// feedback is the document shape the host reads from stdout.
type feedback struct {
	Items []Item `json:"items"`
}
