package report

// Fixed question headings and prose commentary, one pair per analysis, in
// report order.
const (
	HeadingAttendance    = "How has match attendance evolved across tournaments?"
	HeadingFinals        = "Which teams appear most often in finals?"
	HeadingMatchups      = "Which matchups drew the biggest crowds?"
	HeadingGoals         = "Who scored, and at which stage, in the chosen tournament?"
	HeadingHosts         = "How does attendance look on home soil?"
	HeadingGoalsByDecade = "Have matches become higher or lower scoring over the decades?"
)

const (
	CommentaryAttendance = "Average attendance climbs from the low five figures of the inter-war " +
		"tournaments to sustained highs after 1950, with the 1950 Brazil and 1994 United States " +
		"editions standing out as peaks driven by very large stadiums."

	CommentaryFinals = "Final appearances concentrate in a handful of footballing powers. " +
		"Brazil, Italy and Germany together account for the majority of final-stage rows, while " +
		"several nations reached the title match exactly once."

	CommentaryMatchups = "The best-attended pairings are dominated by hosts playing in " +
		"flagship stadiums, most famously matches staged at the Maracanã in 1950 and the " +
		"Estadio Azteca in 1970 and 1986."

	CommentaryGoals = "The treemap splits the tournament's goals by stage and then by team. " +
		"Large cells in the group stage reflect sheer match volume; knockout cells reward the " +
		"sides that kept scoring as the field narrowed."

	CommentaryHosts = "Host nations reliably fill their grounds: playing at home pairs a " +
		"partisan crowd with the biggest venue in the country. Greyed regions either never " +
		"hosted or have no surviving attendance rows in the source data."

	CommentaryGoalsByDecade = "Scoring peaks in the free-wheeling early decades, with the " +
		"1950s medians the highest on record, then settles as defensive organisation spreads. " +
		"Outlier points mark the occasional rout that every era still produces."
)
