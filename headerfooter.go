package md2tex

// headerFooterPass activates a fancyhdr page style with the document title
// on the left, "id, Rev. N" on the right, and a "Page X of Y" center footer.
// It runs after titleTOCPass at the same anchor offsets, so its lines land
// nearest \begin{document} on both sides: the title page keeps an empty
// style before \maketitle runs.
type headerFooterPass struct{}

func (headerFooterPass) Name() string { return "header and footer" }

func (headerFooterPass) Apply(doc *Document, fm FrontMatter, _ *Context) error {
	i, err := findBeginDocument(doc)
	if err != nil {
		return err
	}

	title, err := fm.Title()
	if err != nil {
		return err
	}
	id, err := fm.ID()
	if err != nil {
		return err
	}
	revision, err := fm.Revision()
	if err != nil {
		return err
	}

	doc.InsertAt(i+1,
		`\thispagestyle{empty}`,
	)
	doc.InsertAt(i,
		`\usepackage{fancyhdr}`,
		`\usepackage{lastpage}`,
		`\pagestyle{fancy}`,
		`\lhead{`+title+`}`,
		`\rhead{`+id+`, Rev. `+revision+`}`,
		`\cfoot{Page \thepage\ of \pageref{LastPage}}`,
	)
	return nil
}
