package explain

import "reelcaster/internal/types"

// baseExplanations is the shared table: one entry per factor, used verbatim
// for any species that does not override it. Per-species text lives in
// speciesOverrides and is merged over this table at lookup time.
var baseExplanations = map[types.FactorKey]FactorExplanation{
	types.FactorSeasonality: {
		Title:         "Run Timing",
		Summary:       "How close today sits to the species' peak run window.",
		WhyItMatters:  "Fish density in local waters follows the migration calendar; timing the run matters more than any single weather factor.",
		HowCalculated: "A bell curve over day-of-year centered on the species' historical run peak, with run-cycle species gated down on off years.",
		ScoringRanges: tierRanges("Inside the peak run window", "Run building or tapering", "Shoulder season", "Well outside the run"),
		Recommendations: map[Tier]string{
			TierExcellent: "You are inside the peak window. Fish are here in numbers; prioritize time on the water this week.",
			TierGood:      "The run is building or tapering. Fresh fish are moving through; target travel lanes.",
			TierFair:      "Shoulder season. A few early or late fish around, but manage expectations.",
			TierPoor:      "Well outside the run. Consider a different target species until the calendar turns.",
		},
	},
	types.FactorLightTime: {
		Title:         "Light & Time of Day",
		Summary:       "Proximity to the dawn and dusk feeding windows, adjusted for cloud cover.",
		WhyItMatters:  "Low-angle light concentrates baitfish and drops predator caution; the first and last two hours of light out-fish midday almost everywhere.",
		HowCalculated: "Minutes from the nearest sunrise or sunset transition drive a crepuscular curve; heavy cloud cover buys back part of the midday penalty.",
		ScoringRanges: tierRanges("Dawn or dusk window open", "Workable light", "Flat midday or early night", "High sun or dead of night"),
		Recommendations: map[Tier]string{
			TierExcellent: "Prime light window. Be set up and fishing before it opens, not rigging through it.",
			TierGood:      "Workable light. Overcast or a nearby transition is keeping fish active.",
			TierFair:      "Flat light period. Fish deeper or shaded structure until the next transition.",
			TierPoor:      "Bright, high sun or dead of night. Plan the trip around the next dawn or dusk.",
		},
	},
	types.FactorPressureTrend: {
		Title:           "Barometric Pressure Trend",
		Summary:         "The direction and rate of pressure change over the last several hours.",
		WhyItMatters:    "Fish feed ahead of falling pressure and settle after a rise stabilizes; rapid drops shut the bite down as fronts pass.",
		HowCalculated:   "Pressure delta over the trailing three to six hours, banded into rising, stable, slow-fall and rapid-fall with interpolation between bands.",
		ScientificBasis: "Swim bladder sensitivity to pressure change is the usual explanation; the correlation with frontal passage is well documented either way.",
		ScoringRanges:   tierRanges("Rising barometer", "Stable barometer", "Slow fall under way", "Rapid pre-frontal drop"),
		Recommendations: map[Tier]string{
			TierExcellent: "Rising or freshly stabilized pressure. Post-frontal feeding is on; fish confidently.",
			TierGood:      "Steady pressure. Conditions are settled and fish are on normal patterns.",
			TierFair:      "Slow fall under way. Feeding may briefly spike before the front; fish now rather than later.",
			TierPoor:      "Rapid pressure drop. A front is arriving; expect a tough bite and deteriorating weather.",
		},
	},
	types.FactorTidalCurrent: {
		Title:         "Tidal Current",
		Summary:       "Current speed relative to the species' preferred moving-water band.",
		WhyItMatters:  "Moving water conveys bait and scent and positions predators on seams; too little movement scatters fish, too much blows gear out.",
		HowCalculated: "Current magnitude scored on a bell curve around the species' preferred speed, flood or ebb alike.",
		ScoringRanges: tierRanges("In the preferred band", "Near the band", "Marginal flow", "Slack or ripping"),
		Recommendations: map[Tier]string{
			TierExcellent: "Current sits in the sweet band. Fish current seams and back-eddies hard.",
			TierGood:      "Decent water movement. Adjust weight to stay in the zone.",
			TierFair:      "Marginal flow. Fish the windows around the exchange rather than through it.",
			TierPoor:      "Slack or ripping current. Wait for the exchange to moderate.",
		},
	},
	types.FactorTidalSlope: {
		Title:         "Slack Proximity",
		Summary:       "How close the tide is to slack water, when current nearly stops.",
		WhyItMatters:  "Bottom fishing needs gear on the bottom; near slack, vertical presentations fish clean and bites convert.",
		HowCalculated: "Current speed inverted into a slack-proximity score: highest at zero flow, decaying as the exchange builds.",
		ScoringRanges: tierRanges("At or near slack", "Current easing", "Moderate current", "Full exchange"),
		Recommendations: map[Tier]string{
			TierExcellent: "At or near slack. Gear fishes vertical; work bottom structure directly.",
			TierGood:      "Current easing toward slack. Get positioned now for the window.",
			TierFair:      "Moderate current. Expect scope in the line and lighter bite detection.",
			TierPoor:      "Full exchange. Holding bottom will be difficult; wait it out.",
		},
	},
	types.FactorTidalRange: {
		Title:         "Tidal Range",
		Summary:       "The day's total tidal exchange, from neap to spring.",
		WhyItMatters:  "Big exchanges flush bait and energize the food chain; small exchanges give long fishable windows. Which matters depends on the species.",
		HowCalculated: "The day's high-to-low exchange scored against the neap-spring cycle, inverted for species that prefer small exchanges.",
		ScoringRanges: tierRanges("Exchange suits the fishery", "Favorable range", "Working against the pattern", "Wrong end of the cycle"),
		Recommendations: map[Tier]string{
			TierExcellent: "The exchange suits this fishery. Plan a full session.",
			TierGood:      "A favorable range. Standard approach applies.",
			TierFair:      "The exchange is working against the preferred pattern; shorten the session to the best windows.",
			TierPoor:      "The wrong end of the neap-spring cycle for this target. Look a few days out.",
		},
	},
	types.FactorTidalDynamics: {
		Title:         "Tidal Dynamics",
		Summary:       "A combined read of slack proximity, exchange size and tide direction.",
		WhyItMatters:  "Ambush predators feed where dying current meets a meaningful exchange; the combination matters more than either piece alone.",
		HowCalculated: "Slack proximity scaled by exchange size, with a bonus when the tide is falling.",
		ScoringRanges: tierRanges("Slack on a strong falling exchange", "Good slack and movement", "One element off", "Pieces not aligned"),
		Recommendations: map[Tier]string{
			TierExcellent: "Slack on a strong exchange with the tide falling. This is the window.",
			TierGood:      "Good combination of slack and movement. Fish the structure edges.",
			TierFair:      "Partial setup. One element is off; expect a slower pick.",
			TierPoor:      "The pieces are not aligned. Wait for the next slack on a bigger exchange.",
		},
	},
	types.FactorTidalMovement: {
		Title:         "Tidal Movement",
		Summary:       "Blended current, range and direction scoring for movement-keyed feeders.",
		WhyItMatters:  "Some species key on the overall character of water movement rather than any single tide measure; falling water concentrates them on travel routes.",
		HowCalculated: "Current and range scores blended, with an ebb-direction bonus.",
		ScoringRanges: tierRanges("Strong movement on the ebb", "Decent movement", "Soft movement", "Minimal movement"),
		Recommendations: map[Tier]string{
			TierExcellent: "Strong movement on the ebb. Intercept travel lanes now.",
			TierGood:      "Decent movement. Fish the down-current side of structure.",
			TierFair:      "Soft movement. Cover water until you contact fish.",
			TierPoor:      "Minimal movement. Feeding will be scattered and brief.",
		},
	},
	types.FactorSeaState: {
		Title:         "Sea State",
		Summary:       "Wind and wave conditions relative to safe, fishable ceilings.",
		WhyItMatters:  "Beyond the ceilings this is a safety gate, not a preference; below them, chop still affects boat control and presentation quality.",
		HowCalculated: "Wind and wave height each decay smoothly toward zero at the species ceilings; the worse of the two is the score, and exceeding a ceiling caps the whole forecast.",
		ScoringRanges: tierRanges("Calm to light", "Manageable chop", "Building seas", "At or beyond safe limits"),
		Recommendations: map[Tier]string{
			TierExcellent: "Calm to light conditions. Everything fishes well.",
			TierGood:      "Manageable chop. Mind your drift speed.",
			TierFair:      "Building seas. Fish protected water and watch the forecast trend.",
			TierPoor:      "At or beyond safe limits. Do not launch; no score justifies marginal seas.",
		},
	},
	types.FactorWaterTemp: {
		Title:         "Water Temperature",
		Summary:       "Surface water temperature against the species' comfort band.",
		WhyItMatters:  "Temperature governs metabolism and holding depth; outside the band fish feed less and move deeper or away.",
		HowCalculated: "Full score inside the species' comfort band, decaying proportionally with distance outside it; neutral when no water reading exists.",
		ScoringRanges: tierRanges("Inside the comfort band", "Near the band edge", "Off the band", "Far outside the band"),
		Recommendations: map[Tier]string{
			TierExcellent: "Temperature is in the comfort band. Fish typical depths and speeds.",
			TierGood:      "Near the band edge. Expect fish slightly deeper or shallower than usual.",
			TierFair:      "Off the band. Slow presentations and probe the thermocline.",
			TierPoor:      "Far outside the band. Fish are suppressed or elsewhere; consider another target.",
		},
	},
	types.FactorPrecipitation: {
		Title:         "Precipitation",
		Summary:       "Current rainfall intensity and lightning potential.",
		WhyItMatters:  "Light rain breaks the surface and emboldens fish; heavy rain muddies inflows and makes for miserable, less effective fishing. Lightning ends the discussion.",
		HowCalculated: "Rainfall banded into dry, light, moderate and heavy with a fixed score per band; elevated lightning potential zeroes the factor outright.",
		ScoringRanges: tierRanges("Light rain or drizzle", "Dry and settled", "Moderate rain", "Heavy rain or lightning"),
		Recommendations: map[Tier]string{
			TierExcellent: "Light rain or drizzle. A quiet advantage; fish it.",
			TierGood:      "Dry and settled. Standard conditions.",
			TierFair:      "Moderate rain. Fishable with the right gear; watch runoff near creek mouths.",
			TierPoor:      "Heavy rain or lightning risk. Stand down until it passes.",
		},
	},
	types.FactorVisibility: {
		Title:         "Visibility",
		Summary:       "Air visibility between clear conditions and fog.",
		WhyItMatters:  "Fog rarely turns the bite off, but it turns the run to the grounds into the hazard; reduced visibility also hides the bird and bait sign the surface fishery reads.",
		HowCalculated: "Visibility distance banded into clear, light haze, reduced and fog with a fixed score per band.",
		ScoringRanges: tierRanges("Clear air", "Light haze", "Reduced visibility", "Fog"),
		Recommendations: map[Tier]string{
			TierExcellent: "Clear air. Navigate and read surface sign normally.",
			TierGood:      "Light haze. No practical effect beyond longer glassing.",
			TierFair:      "Reduced visibility. Slow the run and lean on electronics.",
			TierPoor:      "Fog. Stay off open crossings until it lifts; the fish will wait.",
		},
	},
	types.FactorSolunar: {
		Title:           "Solunar Period",
		Summary:         "Whether the timestamp falls in a major or minor lunar feeding period.",
		WhyItMatters:    "Moon transit and rise/set correlate with short feeding spikes, strongest when they coincide with dawn, dusk or a tide change.",
		HowCalculated:   "Fixed scores for major, minor, near-period and between-period windows derived from lunar transit and rise/set times.",
		ScientificBasis: "The solunar correlation is folk theory with a century of anecdote behind it; the factor carries a small weight accordingly.",
		ScoringRanges:   tierRanges("Major period open", "Minor period or near one", "Between periods", "Dead lunar window"),
		Recommendations: map[Tier]string{
			TierExcellent: "Major period open. Expect a concentrated feeding spike; stay on your best water.",
			TierGood:      "Minor period or near one. A modest bump in activity.",
			TierFair:      "Between periods. Rely on tide and light instead.",
			TierPoor:      "Dead lunar window. Let the stronger factors drive the plan.",
		},
	},
	types.FactorCatchReports: {
		Title:         "Recent Catch Reports",
		Summary:       "Recency-weighted volume and success rate of nearby reports.",
		WhyItMatters:  "Fresh reports are ground truth the model cannot compute; a hot recent bite outranks modeled conditions.",
		HowCalculated: "Reports from the last month weighted by age, with week-old reports at full weight, then scored on volume and success ratio.",
		ScoringRanges: tierRanges("Hot recent bite", "Steady recent success", "Thin or dated reports", "Recent reports unsuccessful"),
		Recommendations: map[Tier]string{
			TierExcellent: "The fleet is on them. Go while the bite holds.",
			TierGood:      "Steady recent success nearby. Reasonable confidence.",
			TierFair:      "Thin or dated reports. Treat the model's read as unconfirmed.",
			TierPoor:      "Recent reports skew unsuccessful. Scout or pick another area.",
		},
	},
	types.FactorScentCurrent: {
		Title:         "Scent Dispersal Current",
		Summary:       "Whether current over the soak carries bait scent without moving gear.",
		WhyItMatters:  "Pot fishing is a scent game: a moderate current builds a plume that draws crustaceans in; slack builds nothing, and heavy current rolls gear.",
		HowCalculated: "Mean current over the soak scored against the scent-dispersal band of roughly one knot, flagging trap-roll risk above two.",
		ScoringRanges: tierRanges("Ideal plume current", "Workable flow", "Weak or strong flow", "Slack or gear-rolling current"),
		Recommendations: map[Tier]string{
			TierExcellent: "Ideal scent-plume current. Set across the current line with fresh bait.",
			TierGood:      "Workable flow. Favor heavier pots on exposed sets.",
			TierFair:      "Weak or strong flow. Expect a slower fill; extend the soak.",
			TierPoor:      "Current will roll gear or build no plume. Re-time the set.",
		},
	},
	types.FactorMoltQuality: {
		Title:         "Molt Quality",
		Summary:       "A water-temperature proxy for where the local molt cycle stands.",
		WhyItMatters:  "Post-molt hardened shells mean full, feeding animals; mid-molt animals are soft, empty and not worth keeping.",
		HowCalculated: "Water temperature mapped onto the molt calendar: dormant below the molt band, molting inside it, prime post-molt above it.",
		ScoringRanges: tierRanges("Post-molt window", "Approaching post-molt", "Mixed shell condition", "Mid-molt"),
		Recommendations: map[Tier]string{
			TierExcellent: "Post-molt window. Hard, full shells; prime keeping quality.",
			TierGood:      "Approaching the post-molt window. Quality is improving.",
			TierFair:      "Mixed shell condition. Expect sorting through soft animals.",
			TierPoor:      "Mid-molt. Mostly soft shells; better to wait a few weeks.",
		},
	},
	types.FactorNocturnalFlood: {
		Title:         "Night Flood Overlap",
		Summary:       "How much of the soak overlaps a nighttime flood tide.",
		WhyItMatters:  "Foraging peaks after dark on a rising tide; a soak placed across that overlap out-fishes a daytime set of equal length.",
		HowCalculated: "The soak window's overlap with darkness on a rising tide, expressed as an activity multiplier up to 1.3x; neutral when sun times are unknown.",
		ScoringRanges: tierRanges("Soak rides a night flood", "Partial overlap", "Little overlap", "Daytime ebb soak"),
		Recommendations: map[Tier]string{
			TierExcellent: "The soak rides a night flood. Set before dusk and pull after first light.",
			TierGood:      "Partial night-flood overlap. A solid set window.",
			TierFair:      "Little overlap. The soak will still fish, just without the bonus.",
			TierPoor:      "Daytime ebb soak. Re-time the set if the schedule allows.",
		},
	},
	types.FactorRetrievalSafety: {
		Title:         "Retrieval Safety",
		Summary:       "Whether wind, current and waves permit safe gear retrieval.",
		WhyItMatters:  "Hauling pots in heavy conditions is how lines end up in props and people end up overboard. This factor gates the whole trip.",
		HowCalculated: "Wind, current and wave height checked against hard retrieval ceilings; any exceedance marks the window unsafe and caps the total.",
		ScoringRanges: tierRanges("Calm retrieval conditions", "Manageable conditions", "Marginal", "Unsafe to haul"),
		Recommendations: map[Tier]string{
			TierExcellent: "Calm retrieval conditions. Haul at will.",
			TierGood:      "Manageable conditions. Keep the line clear of the prop and haul up-current.",
			TierFair:      "Marginal. Shorten soaks so gear comes up before conditions build.",
			TierPoor:      "Unsafe to haul. Leave the gear and come back; pots keep.",
		},
	},
}

// speciesOverrides replaces base entries where a species needs its own text.
// Anything not listed falls through to the base table.
var speciesOverrides = map[types.Species]map[types.FactorKey]FactorExplanation{
	types.SpeciesChinook: {
		types.FactorTidalCurrent: {
			Title:         "Tidal Current",
			Summary:       "Current speed against the chinook trolling band of roughly one to two knots.",
			WhyItMatters:  "Chinook stage on current seams where bait balls stack; the band keeps a flasher working without burying the gear.",
			HowCalculated: "Current magnitude scored on a bell curve centered near 1.25 knots.",
			ScoringRanges: tierRanges("Textbook trolling current", "Good movement", "Soft or heavy current", "Slack or ripping"),
			Recommendations: map[Tier]string{
				TierExcellent: "Textbook trolling current. Work the seam edges at depth with the tide.",
				TierGood:      "Good movement. Adjust downrigger depth to stay with the bait.",
				TierFair:      "Soft or heavy current. Shorten setbacks and slow the troll.",
				TierPoor:      "Slack or ripping water. Wait for the next exchange to build or die.",
			},
		},
		types.FactorWaterTemp: {
			Title:         "Water Temperature",
			Summary:       "Surface temperature against the 9-14C chinook comfort band.",
			WhyItMatters:  "Chinook hold tight to the thermocline; warm surface water pushes them deep and off a surface troll.",
			HowCalculated: "Full score between 9 and 14C, decaying over about five degrees outside the band.",
			ScoringRanges: tierRanges("In the 9-14C band", "Near the band edge", "Warm surface water", "Well off the band"),
			Recommendations: map[Tier]string{
				TierExcellent: "In the band. Fish should be at typical trolling depths.",
				TierGood:      "Near the band edge. Stack gear a little deeper.",
				TierFair:      "Warm water. Fish the bottom third of the water column.",
				TierPoor:      "Well off the band. Find cooler water or deeper structure.",
			},
		},
	},
	types.SpeciesHalibut: {
		types.FactorTidalSlope: {
			Title:         "Slack Proximity",
			Summary:       "How close the tide is to the slack window halibut fishing depends on.",
			WhyItMatters:  "Halibut gear fishes on anchor in deep water; outside slack the scope blows out and baits drag off the spot.",
			HowCalculated: "Current speed inverted into slack proximity, weighted heaviest of any factor in the halibut profile.",
			ScoringRanges: tierRanges("Slack window open", "Approaching slack", "Current still running", "Full exchange"),
			Recommendations: map[Tier]string{
				TierExcellent: "Slack window open. Anchor on the flat and get baits down now.",
				TierGood:      "Approaching slack. Be anchored and rigged before the current dies.",
				TierFair:      "Current still running. Use the time to mark bait and position.",
				TierPoor:      "Full exchange in deep water. Gear will not fish; wait for slack.",
			},
		},
	},
	types.SpeciesLingcod: {
		types.FactorTidalDynamics: {
			Title:         "Tidal Dynamics",
			Summary:       "Slack proximity on a meaningful exchange, with a bonus on the dying ebb.",
			WhyItMatters:  "Lingcod ambush from rock as the ebb dies: enough exchange to move bait, little enough current to hold bottom over structure.",
			HowCalculated: "Slack proximity scaled by exchange size plus an ebb bonus, replacing the separate tide factors in the lingcod profile.",
			ScoringRanges: tierRanges("Ebb dying on a good exchange", "Workable dynamics", "One element off", "No usable window"),
			Recommendations: map[Tier]string{
				TierExcellent: "Ebb dying on a good exchange. Drop big jigs on the pinnacles now.",
				TierGood:      "Workable dynamics. Stay tight to structure and keep bottom contact.",
				TierFair:      "One element off. Expect short feeding bursts around slack only.",
				TierPoor:      "No usable window this exchange. Target the next slack.",
			},
		},
	},
	types.SpeciesChum: {
		types.FactorTidalMovement: {
			Title:         "Tidal Movement",
			Summary:       "Blended current, range and direction read, weighted toward the ebb.",
			WhyItMatters:  "Staging chum ride falling water along beaches and estuary edges; the ebb concentrates them on predictable lines.",
			HowCalculated: "Current and range scores blended with an ebb bonus, replacing the separate tide factors in the chum profile.",
			ScoringRanges: tierRanges("Strong ebb movement", "Moving water", "Soft movement", "Minimal movement"),
			Recommendations: map[Tier]string{
				TierExcellent: "Strong ebb movement. Fish the beach troughs and estuary mouths.",
				TierGood:      "Moving water. Follow the drop-offs as the water falls.",
				TierFair:      "Soft movement. Schools will be scattered; cover water.",
				TierPoor:      "Minimal movement. Staging fish go dour; wait for the ebb.",
			},
		},
	},
	types.SpeciesCrab: {
		types.FactorSeasonality: {
			Title:         "Season & Molt Calendar",
			Summary:       "Position in the late-summer window when hard-shell crab dominate.",
			WhyItMatters:  "Crab abundance in pot depths tracks the molt calendar more than migration; late summer fills the shallows with hard, legal animals.",
			HowCalculated: "A wide bell curve over day-of-year centered on the late-summer hard-shell peak.",
			ScoringRanges: tierRanges("Peak hard-shell season", "Good season position", "Early or late", "Off-season"),
			Recommendations: map[Tier]string{
				TierExcellent: "Peak hard-shell season. Expect full pots at standard depths.",
				TierGood:      "Good season position. Quality animals with some sorting.",
				TierFair:      "Early or late. Drop deeper and expect mixed condition.",
				TierPoor:      "Off-season. Mostly soft or undersize animals in the gear.",
			},
		},
	},
}
