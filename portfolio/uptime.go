// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package portfolio

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// LifeUptime formats the time since the profile's birthday the way uptime would.
// Years use 365.25 days; hours and minutes are the wall clock of now.
func (p *Profile) LifeUptime(now time.Time) string {
	if p.Birthday.IsZero() || now.Before(p.Birthday) {
		return "0 years, 0 days, 0 hours, 0 minutes"
	}
	totalDays := int(now.Sub(p.Birthday).Hours() / 24)
	years := int(float64(totalDays) / 365.25)
	remaining := totalDays - int(float64(years)*365.25)
	return printer.Sprintf("%d years, %d days, %d hours, %d minutes",
		years, remaining, now.Hour(), now.Minute())
}

// DaysOnline is the total number of days since the birthday, thousands-separated.
func (p *Profile) DaysOnline(now time.Time) string {
	if p.Birthday.IsZero() || now.Before(p.Birthday) {
		return "0"
	}
	return printer.Sprintf("%d", int(now.Sub(p.Birthday).Hours()/24))
}
