// Package timezone pins every calendar computation to the zone set by APP_TIMEZONE.
//
// Availability windows, blackout dates and trip start dates are plain calendar days.
// They are parsed with ParseDay and compared after StartOfDay so a trip that starts
// "tomorrow" means the same thing to the API, the pricing rules and the refund tiers.
// The zone is loaded on first use; an unknown or empty name falls back to UTC.
package timezone
