// Package app holds the screens around the sign-up wizard: onboarding, the
// success screen and the home chat, plus the navigator that moves between
// them.
package app
