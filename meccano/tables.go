package meccano

// tables holds every train, indexed by selector-1. Values are in Units,
// mark then space. Never hand out a reference into this array.
var tables = [NumSelectors]Table{
	// A+
	{
		180, 180,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		120, 240,
	},
	// A-
	{
		180, 180,
		30, 30,
		30, 60,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		120, 240,
	},
	// A off
	{
		180, 180,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		120, 240,
	},

	// B+
	{
		180, 180,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		120, 240,
	},
	// B-
	{
		180, 180,
		30, 30,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		120, 240,
	},
	// B off
	{
		180, 180,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		120, 240,
	},

	// C+
	{
		180, 180,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		120, 240,
	},
	// C-
	{
		180, 180,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		120, 240,
	},
	// C off
	{
		180, 180,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		120, 240,
	},

	// D+
	{
		180, 180,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		120, 240,
	},
	// D-
	{
		180, 180,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		120, 240,
	},
	// D off
	{
		180, 180,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 30,
		30, 60,
		120, 240,
	},
}
