package explain

import "reelcaster/internal/types"

// genericOverview backs unrecognized species identifiers, matching the
// generic scoring profile they resolve to.
var genericOverview = SpeciesOverview{
	DisplayName:     "Generic Saltwater",
	Overview:        "A flat, species-agnostic model that leans on tide movement and broad conditions. Used when no dedicated profile exists for the requested species.",
	BestConditions:  "Moving water near a light transition with settled pressure and calm seas.",
	WorstConditions: "Slack water at midday under a crashing barometer or marginal seas.",
	WeightRationale: map[types.FactorKey]string{
		types.FactorTidalCurrent: "With no species physics to lean on, water movement is the single most reliable predictor, so it carries the largest share.",
		types.FactorSeasonality:  "A broad run-calendar term keeps the generic model honest about time of year without assuming any one migration.",
	},
}

// speciesOverviews holds the species-level entry for every dedicated profile:
// display name, a model overview, the bracketing condition descriptions, and
// rationale text for the factors whose weights define the profile.
var speciesOverviews = map[types.Species]SpeciesOverview{
	types.SpeciesChinook: {
		DisplayName:     "Chinook Salmon",
		Overview:        "A run-timing and current model for the deep troll fishery. Chinook stage on bait concentrated by moving water, so the profile splits its weight between the migration calendar and tidal current.",
		BestConditions:  "Peak run window, dawn light, one to two knots of current and water in the 9-14C band.",
		WorstConditions: "Off-run dates, slack midday water, or surface temperatures well above the band pushing fish deep.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorSeasonality:  "No conditions overcome an absent run; the calendar and the current share the top weight.",
			types.FactorTidalCurrent: "Chinook feed on seams where current stacks bait, making movement as decisive as timing.",
			types.FactorLightTime:    "The dawn bite is the most reliable daily pattern in the fishery.",
		},
	},
	types.SpeciesCoho: {
		DisplayName:     "Coho Salmon",
		Overview:        "A surface-oriented model weighted toward light. Coho chase bait in the top of the water column, so light windows and run timing dominate, with a larger rain term than other salmon.",
		BestConditions:  "Early fall mornings with overcast or drizzle, modest current and cool surface water.",
		WorstConditions: "Bright, flat midday outside the run window.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorLightTime:     "Surface feeders are the most light-sensitive target in the model; light ties the run calendar for top weight.",
			types.FactorSeasonality:   "The fall run window is short and sharply peaked.",
			types.FactorPrecipitation: "Rain flattens the surface and emboldens shallow fish, so coho carry a doubled rain weight.",
		},
	},
	types.SpeciesPink: {
		DisplayName:     "Pink Salmon",
		Overview:        "The most calendar-driven profile in the model. Pinks return on a two-year cycle with a narrow peak, so seasonality dwarfs every conditions factor, and even years gate the score to nothing.",
		BestConditions:  "An odd-year August with soft current and any workable light.",
		WorstConditions: "An even year; no conditions factor can rescue the off-cycle.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorSeasonality:  "The odd-year cycle and narrow peak make the calendar worth nearly a third of the score on its own.",
			types.FactorTidalCurrent: "Schooling pinks still ride moving water along the beaches.",
		},
	},
	types.SpeciesSockeye: {
		DisplayName:     "Sockeye Salmon",
		Overview:        "A calendar-first model with a tighter temperature band than the other salmon. Sockeye travel in temperature-keyed schools on a sharply peaked midsummer run.",
		BestConditions:  "Mid-July, cool water under 13C, and steady moderate current on the travel lanes.",
		WorstConditions: "Warm surface water or off-run dates; sockeye rarely bite outside their narrow conditions.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorSeasonality:  "The run peak is the narrowest of the annual-return salmon, so the calendar carries the most weight.",
			types.FactorWaterTemp:    "Sockeye hold to cold water more tightly than any other salmon in the model.",
			types.FactorTidalCurrent: "Travel lanes concentrate on moving water.",
		},
	},
	types.SpeciesChum: {
		DisplayName:     "Chum Salmon",
		Overview:        "A movement-keyed model for staging fall fish. Chum ride falling water along beaches and estuary edges, so a blended tidal-movement term outweighs even the run calendar.",
		BestConditions:  "A strong October ebb along an estuary beach in low light.",
		WorstConditions: "Still water between exchanges, or dates outside the short fall window.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorTidalMovement: "Staging chum respond to the overall character of water movement more than any single tide measure; the blended term takes the top weight.",
			types.FactorSeasonality:   "The fall run window brackets everything else.",
		},
	},
	types.SpeciesHalibut: {
		DisplayName:     "Pacific Halibut",
		Overview:        "A slack-window model for deep anchored bait fishing. Gear only fishes clean near slack, so slack proximity leads the table and small neap exchanges score above big springs.",
		BestConditions:  "A long neap slack on a calm early-summer day, baits soaking on the flat through the turn.",
		WorstConditions: "Spring tides ripping over deep water, or seas beyond the anchoring ceiling.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorTidalSlope: "Deep anchored gear fishes clean only near slack; nothing else in the profile matters until it does.",
			types.FactorTidalRange: "Neap cycles stretch the slack window, so the range term runs inverted.",
			types.FactorVisibility: "The run to offshore flats makes fog a real cost even when the fish would bite.",
		},
	},
	types.SpeciesLingcod: {
		DisplayName:     "Lingcod",
		Overview:        "An ambush-window model built around a single tidal interaction: slack proximity on a meaningful exchange, with a bonus as the ebb dies over rock. That combined term carries more weight than any other factor.",
		BestConditions:  "The last hour of a big ebb over a pinnacle, seas calm enough to hold position.",
		WorstConditions: "Mid-exchange current that blows jigs off the structure, or no exchange worth feeding on.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorTidalDynamics: "The ambush window is a product of slack and exchange together; the interaction term replaces the separate tide factors outright.",
			types.FactorSeaState:      "Jigging vertical over rock needs position-holding, so seas weigh heavier than for the trolling species.",
			types.FactorCatchReports:  "Resident fish make recent reports unusually predictive of the next trip.",
		},
	},
	types.SpeciesRockfish: {
		DisplayName:     "Rockfish",
		Overview:        "A forgiving resident-fish model. Rockfish hold structure year round, so no single factor dominates; slack windows, light and temperature share the load and the season term is nearly flat.",
		BestConditions:  "A calm morning slack over good structure in moderate water temperatures.",
		WorstConditions: "Heavy current or seas beyond the small-boat ceiling; the fish stay put but the gear cannot.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorTidalSlope:  "Light-gear bottom fishing needs the current down, so slack proximity takes the largest single share.",
			types.FactorSeasonality: "Residents are available year round; the calendar term is kept small on purpose.",
		},
	},
	types.SpeciesCrab: {
		DisplayName:     "Dungeness Crab",
		Overview:        "A pot-fishery model scored on soak windows rather than bites. Scent dispersal, molt condition and the night-flood overlap set the catch; retrieval safety gates whether gear can come back at all.",
		BestConditions:  "Late-summer hard-shell season, a knot of scent-carrying current, and a soak riding a nighttime flood.",
		WorstConditions: "Mid-molt soft shells, slack or gear-rolling current, or retrieval conditions beyond the safety ceilings.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorScentCurrent:    "Pots catch exactly as well as their scent plume draws; the dispersal current is the heart of the profile.",
			types.FactorMoltQuality:     "A full pot of soft-shell animals is a wasted soak, so shell condition weighs nearly as much as the plume.",
			types.FactorRetrievalSafety: "Hauling in heavy conditions is the fishery's real danger; the factor can cap the entire score.",
		},
	},
	types.SpeciesPrawn: {
		DisplayName:     "Spot Prawn",
		Overview:        "A deep-water trap model dominated by slack timing. Prawn gear sets and hauls in hundreds of feet, so slack proximity leads, with cold-water preference and retrieval safety close behind.",
		BestConditions:  "Spring neap slacks over deep structure with water in the 7-11C band.",
		WorstConditions: "Full exchanges that bury the line angle, warm water, or seas beyond the hauling ceiling.",
		WeightRationale: map[types.FactorKey]string{
			types.FactorTidalSlope:      "Setting and hauling at depth is only practical near slack, so it takes a quarter of the score.",
			types.FactorWaterTemp:       "Prawns hold to cold deep water; the band is the tightest in the model.",
			types.FactorRetrievalSafety: "Long line scope in building seas is how gear is lost; safety gates the trip.",
		},
	},
}
