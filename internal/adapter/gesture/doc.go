// Package gesture classifies pointer and touch contacts into
// navigation intents. A short, mostly stationary contact is a tap and
// becomes activate; a fast contact that travels far enough is a swipe
// and becomes one move along its dominant axis. Each completed gesture
// yields at most one intent and nothing auto-repeats.
package gesture
