// Package locale parses locale identifiers and looks up the calendar data
// used to probe whether a locale is actually supported. Month names come from
// github.com/goodsign/monday.
//
//	locale.HasSupport("ru-RU", "январь") // true
//	locale.HasSupport("en-US", "January") // true
//	locale.HasSupport("ar-EG", "يناير")   // false, no calendar data
package locale
