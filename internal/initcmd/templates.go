package initcmd

import "github.com/MakeNowJust/heredoc"

var templates = []template{
	{
		Name:        "minimal",
		Description: fileSample,
		Files: []fileSpec{
			{Path: fileSample, Data: sampleCSV, Mode: filePerm},
		},
	},
	{
		Name:        "standard",
		Description: fileSample + " + " + fileSettings + " + " + fileNotes,
		Files: []fileSpec{
			{Path: fileSample, Data: sampleCSV, Mode: filePerm},
			{Path: fileSettings, Data: settingsTOML, Mode: filePerm},
			{Path: fileNotes, Data: notesMD, Mode: filePerm},
		},
	},
}

func findTemplate(name string) (template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return template{}, false
}

var sampleCSV = heredoc.Doc(`
	name,dept,city,salary,tenure
	Ana Reyes,Engineering,Lisbon,61200,14m
	Bo Lindqvist,Sales,Austin,48900,3m
	Cem Okafor,Ops,Osaka,53400,27m
	Dara Tanaka,Finance,Warsaw,70100,8m
	Eli Moreau,Support,Nairobi,45000,40m
	Fei Silva,Engineering,Oslo,66800,19m
`)

var settingsTOML = heredoc.Doc(`
	# Copy to the tabletify config directory to make these the defaults,
	# or override single keys at launch with -set key=value.

	[grid]
	overscan = 5
	max_window_rows = 300
	page_size = 0
	row_numbers = true
	zebra = true

	[clipboard]
	system_enabled = true

	[ui]
	accent = "#7D56F4"
	watch_interval = "2s"
`)

var notesMD = heredoc.Doc(`
	# tabletify starter

	Open the sample data:

	    tabletify -file sample.csv

	Select cells with the mouse or shift+arrows, copy with ctrl+c, and the
	block is on your system clipboard as tab-separated text. Press ? inside
	the app for the full key list.
`)
