package deck

// Demo returns the built-in deck shown when no paths are given.
func Demo() *Deck {
	pages := []Page{
		{
			Title: "Welcome",
			Body: `Welcome to swipedeck.

Each page of this deck lives under one tab in the strip above. The
selected tab stays centered; its neighbors park at the strip edges
and swap places as you move between pages.

Press l or the right arrow to slide to the next page.`,
		},
		{
			Title: "Mouse",
			Body: `The tab strip is draggable.

Press and hold on the strip, then move left or right: the pages
follow your pointer column for column, and the tabs glide between
their anchors in step with the content. Release and the nearest
page snaps into place.

A plain click on a tab jumps straight to its page.`,
		},
		{
			Title: "Keys",
			Body: `h / left     previous page
l / right    next page
g / home     first page
G / end      last page
1-9          jump to page
j / k        scroll page content
q            quit`,
		},
		{
			Title: "Themes",
			Body: `Tabs light up as they approach the center of the strip.

The glow fades with distance, so during a slide you can watch the
highlight hand over from the old tab to the new one. Pick a theme
with --theme or in the config file; "terminal" uses your emulator's
own palette.`,
		},
		{
			Title: "Config",
			Body: `swipedeck reads a TOML config from your user config directory.

  [general]    remember_last_page, outside_offset
  [appearance] theme
  [animation]  fps, frequency, damping

Run "swipedeck setup" to create it interactively, or
"swipedeck config path" to find it.`,
		},
		{
			Title: "About",
			Body: `swipedeck is a terminal pager with a swipeable tab strip.

Point it at a directory of .txt or .md files, or list files
directly:

  swipedeck notes/
  swipedeck intro.md usage.md faq.md

With remember_last_page enabled it reopens each deck on the page
you left it.`,
		},
	}

	d := &Deck{Name: "demo", Pages: pages, key: "demo"}
	for i := range d.Pages {
		d.Pages[i].Size = int64(len(d.Pages[i].Body))
	}
	return d
}
