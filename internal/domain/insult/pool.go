// Package insult builds Shakespearean replacement names such as
// artless_base_court_knave and allocates them without collisions.
package insult

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Pool holds the three word lists an insult is drawn from. Words may
// themselves contain underscores (base_court, apple_john).
type Pool struct {
	Adjectives []string
	Compounds  []string
	Nouns      []string
}

var defaultPool = Pool{
	Adjectives: []string{
		"artless", "bawdy", "beslubbering", "bootless", "churlish", "cockered",
		"clouted", "craven", "currish", "dankish", "dissembling", "droning",
		"errant", "fawning", "fobbing", "froward", "frothy", "gleeking",
		"goatish", "gorbellied", "impertinent", "infectious", "jarring", "loggerheaded",
		"lumpish", "mammering", "mangled", "mewling", "paunchy", "pribbling",
		"puking", "puny", "qualling", "rank", "reeky", "roguish",
		"ruttish", "saucy", "spleeny", "spongy", "surly", "tottering",
		"unmuzzled", "vain", "venomed", "villainous", "warped", "wayward",
		"weedy", "yeasty", "cullionly", "fusty", "caluminous", "wimpled",
	},
	Compounds: []string{
		"base_court", "bat_fowling", "beef_witted", "beetle_headed", "boil_brained", "clapper_clawed",
		"clay_brained", "common_kissing", "crook_pated", "dismal_dreaming", "dizzy_eyed", "doghearted",
		"dread_bolted", "earth_vexing", "elf_skinned", "fat_kidneyed", "fen_sucked", "flap_mouthed",
		"fly_bitten", "folly_fallen", "fool_born", "full_gorged", "guts_griping", "half_faced",
		"hasty_witted", "hedge_born", "hell_hated", "idle_headed", "ill_breeding", "ill_nurtured",
		"knotty_pated", "milk_livered", "motley_minded", "onion_eyed", "plume_plucked", "pottle_deep",
		"pox_marked", "reeling_ripe", "rough_hewn", "rude_growing", "rump_fed", "shard_borne",
		"sheep_biting", "spur_galled", "swag_bellied", "tardy_gaited", "tickle_brained", "toad_spotted",
		"unchin_snouted", "weather_bitten", "whoreson", "malmsey_nosed", "rampallian", "lily_livered",
	},
	Nouns: []string{
		"apple_john", "baggage", "barnacle", "bladder", "boar_pig", "bugbear",
		"bum_bailey", "canker_blossom", "clack_dish", "clotpole", "coxcomb", "codpiece",
		"death_token", "dewberry", "flap_dragon", "flax_wench", "flirt_gill", "foot_licker",
		"fustilarian", "giglet", "gudgeon", "haggard", "harpy", "hedge_pig",
		"horn_beast", "hugger_mugger", "joithead", "lewdster", "lout", "maggot_pie",
		"malt_worm", "mammet", "measle", "minnow", "miscreant", "moldwarp",
		"mumble_news", "nut_hook", "pigeon_egg", "pignut", "puttock", "pumpion",
		"ratsbane", "scut", "skainsmate", "strumpet", "varlot", "vassal",
		"whey_face", "wagtail", "knave", "villain", "recreant", "varlet",
		"muttonchop", "blaggard", "scurvy_knave", "milk_sop", "hedge_born_cur",
	},
}

// DefaultPool returns the built-in word lists.
func DefaultPool() Pool {
	return defaultPool
}

// Capacity is the number of distinct insults the pool can produce. Word
// lists are assumed free of duplicates.
func (p Pool) Capacity() int {
	return len(p.Adjectives) * len(p.Compounds) * len(p.Nouns)
}

// Draw picks one word from each list uniformly and joins them with "_".
func (p Pool) Draw(r *rand.Rand) string {
	return p.Adjectives[r.IntN(len(p.Adjectives))] + "_" +
		p.Compounds[r.IntN(len(p.Compounds))] + "_" +
		p.Nouns[r.IntN(len(p.Nouns))]
}

// Recognizes reports whether name could have been drawn from the pool, in
// snake or camel style. Both adjective lists are consulted in order; nouns
// must close the name.
func (p Pool) Recognizes(name string) bool {
	snake := toSnake(name)

	for _, adj := range p.Adjectives {
		rest, ok := strings.CutPrefix(snake, adj+"_")
		if !ok {
			continue
		}

		for _, compound := range p.Compounds {
			noun, ok := strings.CutPrefix(rest, compound+"_")
			if ok && contains(p.Nouns, noun) {
				return true
			}
		}
	}

	return false
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}

	return false
}

// toSnake turns artlessBaseCourtKnave into artless_base_court_knave and
// leaves snake case untouched.
func toSnake(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
