package viewmodel

// Layout is the data of the page hosting the widgets.
type Layout struct {
	Title   string
	Lang    string
	IsDev   bool
	Counter Element
	Date    Element
}

// Element is one widget element of the page.
type Element struct {
	ID   string
	Text string
}
