package internal

import (
	"strconv"
)

// Languages covered by the built-in calendar names
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

var monthNames = map[string][12]string{
	LanguageEnglish + CalendarFormFull: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	LanguageEnglish + CalendarFormGenitive: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	LanguageEnglish + CalendarFormShort: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	LanguageRussian + CalendarFormFull: {"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
	LanguageRussian + CalendarFormGenitive: {"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
	LanguageRussian + CalendarFormShort: {"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
}

// weekday names start on Sunday, matching time.Weekday
var weekdayNames = map[string][7]string{
	LanguageEnglish + CalendarFormFull:  {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	LanguageEnglish + CalendarFormShort: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LanguageRussian + CalendarFormFull:  {"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
	LanguageRussian + CalendarFormShort: {"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
}

// CalendarDictionary returns the built-in month and weekday names as a
// language-keyed dictionary: month.<1-12>.<form>.<lang> and
// weekday.<0-6>.<form>.<lang>. Collapse it with Translate before use.
func CalendarDictionary() map[string]any {
	languages := []string{LanguageEnglish, LanguageRussian}

	months := make(map[string]any, 12)
	for i := 0; i < 12; i++ {
		forms := make(map[string]any, 3)
		for _, form := range []string{CalendarFormShort, CalendarFormFull, CalendarFormGenitive} {
			byLang := make(map[string]any, len(languages))
			for _, lang := range languages {
				byLang[lang] = monthNames[lang+form][i]
			}
			forms[form] = byLang
		}
		months[strconv.Itoa(i+1)] = forms
	}

	weekdays := make(map[string]any, 7)
	for i := 0; i < 7; i++ {
		forms := make(map[string]any, 2)
		for _, form := range []string{CalendarFormShort, CalendarFormFull} {
			byLang := make(map[string]any, len(languages))
			for _, lang := range languages {
				byLang[lang] = weekdayNames[lang+form][i]
			}
			forms[form] = byLang
		}
		weekdays[strconv.Itoa(i)] = forms
	}

	return map[string]any{
		CalendarKeyMonth:   months,
		CalendarKeyWeekday: weekdays,
	}
}
