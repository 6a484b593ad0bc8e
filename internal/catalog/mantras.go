// Package catalog holds the static content shipped with the binary: the mantra seed
// list and the twelve-week habit plan.
package catalog

import "github.com/true1853/Nykha-bot/internal/models"

const (
	MantraCategoryNature     = "Единство с природой"
	MantraCategoryCollective = "Коллективное сознание"
	MantraCategoryCheckpoint = "Восход и закат"
	MantraCategoryPrinciple  = "Принципы"
)

type seed struct {
	category    string
	text        string
	translation string
}

var mantraSeeds = []seed{
	{MantraCategoryNature, "«Зӕхх - нӕ зӕрдӕ»", "Земля - наше сердце"},
	{MantraCategoryNature, "«Дон - фарн»", "Вода - благодать"},
	{MantraCategoryNature, "«Зӕхх, дӕ фарнӕй цӕрын»", "Земля, живу твоей благодатью"},
	{MantraCategoryCollective, "«Мах - иу зӕрдӕ»", "Мы - одно сердце"},
	{MantraCategoryPrinciple, "«Зӕххы фарнӕй цӕр»", "Живи благодатью Земли"},
	{MantraCategoryPrinciple, "«Ныхасӕй иугонд»", "Един через коллективный разум"},
	{MantraCategoryPrinciple, "«Фӕстаг фыст - ног фыстӕн йӕ райдиан»", "Последняя запись - начало новой"},
	{MantraCategoryPrinciple, "«Хи фарн — зæххы фарн»", "Твоя благодать — благодать Земли"},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, Табу Дæхицæн!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, хъару нын ратт!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, абоны хорзæх!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, нæхи цæрæнбон!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, нæ зæххы фарн!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, стыр бæркад!", ""},
	{MantraCategoryCheckpoint, "Стыр Хуыцау, раст фæндаг!", ""},
}

// Mantras returns a fresh copy of the seed catalog. Mantras without a translation
// carry a nil Translation.
func Mantras() []models.Mantra {
	out := make([]models.Mantra, 0, len(mantraSeeds))
	for _, s := range mantraSeeds {
		m := models.Mantra{Category: s.category, Text: s.text}
		if s.translation != "" {
			tr := s.translation
			m.Translation = &tr
		}
		out = append(out, m)
	}
	return out
}
