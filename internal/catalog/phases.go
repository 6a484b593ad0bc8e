package catalog

import (
	"fmt"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/models"
)

var phases = []models.Phase{
	{
		Key:        "phase1_week1",
		Title:      "Неделя 1: Живи благодатью Земли",
		DailyHabit: "1–2 минуты в день созерцайте элемент природы и ощущайте благодарность.",
		MealHabit:  "Перед едой произносите «Зæххы фарнæй цæр» (Живи благодатью Земли).",
		Reflection: "Вечером запишите одно наблюдение о вашей взаимосвязи с природой.",
	},
	{
		Key:        "phase1_week2",
		Title:      "Неделя 2: Един через коллективный разум",
		DailyHabit: "В течение дня замечайте моменты, когда вы действуете в интересах группы.",
		MealHabit:  "Перед едой подумайте о том, как ваше питание влияет на сообщество.",
		Reflection: "Запишите один пример коллективного действия, в котором вы участвовали.",
	},
	{
		Key:        "phase1_week3",
		Title:      "Неделя 3: Трудись ради обновления",
		DailyHabit: "Выделяйте 5 минут на созидательную активность: посадка растения или уборка.",
		MealHabit:  "Перед едой мысленно посвятите труд, который помогает природе восстановиться.",
		Reflection: "Запишите, какое маленькое дело вы сделали во благо планеты.",
	},
	{
		Key:        "phase1_week4",
		Title:      "Неделя 4: Иди путём чести",
		DailyHabit: "Проверяйте свои поступки на соответствие кодексу чести и справедливости.",
		MealHabit:  "Перед едой произнесите мысленно честную и благодарственную фразу.",
		Reflection: "Запишите ситуацию, где вы выбрали честность вместо лёгкого пути.",
	},
	{
		Key:        "phase1_week5",
		Title:      "Неделя 5: Храни воду чистой, как слезинку",
		DailyHabit: "Сократите расход воды и обратите внимание, сколько воды вы используете.",
		MealHabit:  "Пейте только чистую воду и мысленно поблагодарите источник.",
		Reflection: "Запишите, где и как вы сэкономили воду сегодня.",
	},
	{
		Key:        "phase1_week6",
		Title:      "Неделя 6: Лес — дыхание наших предков",
		DailyHabit: "Проведите 5–10 минут в лесу или среди растений, глубоко дыша.",
		MealHabit:  "Перед едой вспомните лес и его роль в вашем дыхании.",
		Reflection: "Опишите, как запах и звук леса повлияли на ваше состояние.",
	},
	{
		Key:        "phase1_week7",
		Title:      "Неделя 7: Цифра — не замена душе",
		DailyHabit: "Ограничьте экранное время и замените его моментом тишины.",
		MealHabit:  "Во время еды отключайте все гаджеты и ешьте осознанно.",
		Reflection: "Запишите, как ощущалось питание без цифровых отвлечений.",
	},
	{
		Key:        "phase1_week8",
		Title:      "Неделя 8: Рука не для разрушения",
		DailyHabit: "Каждый день совершайте хотя бы один акт созидания или помощи.",
		MealHabit:  "Перед едой подумайте, какие добрые дела вы совершите сегодня.",
		Reflection: "Опишите ваш акт созидания или помощи другим людям.",
	},
	{
		Key:        "phase1_week9",
		Title:      "Неделя 9: Как нарты, ищи равновесие",
		DailyHabit: "Найдите баланс между работой и отдыхом, уделите время себе и окружающим.",
		MealHabit:  "Перед едой настройтесь на гармонию тела и души.",
		Reflection: "Запишите, как вы сегодня сохранили внутреннее равновесие.",
	},
	{
		Key:        "phase1_week10",
		Title:      "Неделя 10: Великое через малое",
		DailyHabit: "Совершайте маленькие добрые дела: улыбнитесь, помогите с чем-то простым.",
		MealHabit:  "Перед едой вспомните малое дело, совершённое вами сегодня.",
		Reflection: "Запишите, как маленький шаг привёл к большому изменению.",
	},
	{
		Key:        "phase1_week11",
		Title:      "Неделя 11: Ты не первое поколение",
		DailyHabit: "Думайте о корнях и своих предках, посвятите минуту благодарности.",
		MealHabit:  "Во время еды вспомните традиции своей семьи и предков.",
		Reflection: "Запишите, какие семейные ценности вы сегодня почитали.",
	},
	{
		Key:        "phase1_week12",
		Title:      "Неделя 12: Твоя благодать — благодать Земли",
		DailyHabit: "Сознательно ощущайте взаимосвязь своей жизненной силы и природы.",
		MealHabit:  "Перед едой произнесите «Хи фарн — зæххы фарн» (Твоя благодать — благодать Земли).",
		Reflection: "Запишите, как сегодня природа подпитывала вашу благодать.",
	},
}

// Phases returns the plan in order.
func Phases() []models.Phase {
	out := make([]models.Phase, len(phases))
	copy(out, phases)
	return out
}

// Phase looks up a plan stage by key.
func Phase(key string) (models.Phase, error) {
	for _, p := range phases {
		if p.Key == key {
			return p, nil
		}
	}
	return models.Phase{}, fmt.Errorf("phase %q: %w", key, apperrors.ErrNotFound)
}
