package locations

// SecretDescriptions explains how to trigger each secret check, for
// clients that surface hints. Keyed by check name.
var SecretDescriptions = map[string]string{
	"TYRIAN (Episode 1) - First U-Ship Secret": "" +
		"Wait for the first U-Ship in the level to start heading upwards.",
	"TYRIAN (Episode 1) - HOLES Warp Orb": "" +
		"Destroy every wave of U-Ships at the start of the level.\n" +
		"The first spinner formation after you approach the enemy platforms will then yield this item.",
	"TYRIAN (Episode 1) - Tank Turn-and-fire Secret": "" +
		"At the section with four tanks driving across two parallel strips of road, wait for the rightmost tank\n" +
		"to get into position, turn, and start firing.",
	"TYRIAN (Episode 1) - SOH JIN Warp Orb": "" +
		"Destroy none of the U-Ships at the start of the level, except for the one that drops the\n" +
		"\"First U-Ship Secret\" item.\n" +
		"Just before the boss flies in, there will be an additional ship that will give this item.",
	"ASTEROID2 (Episode 1) - Tank Turn-around Secret 1": "" +
		"Wait for the first tank you see to turn around and start firing at you.",
	"ASTEROID2 (Episode 1) - Tank Turn-around Secret 2": "" +
		"In the second squadron of tanks, two tanks will turn around and start heading upwards after a short time.\n" +
		"One of those two tanks will yield this item if you wait until it turns around and starts firing again.",
	"ASTEROID2 (Episode 1) - Tank Assault Right Tank Secret": "" +
		"As you're approaching the Tank Assault section, destroy the rightmost tank as it turns onto the\n" +
		"rightmost road, but before it goes offscreen and turns around to fire at you.",
	"ASTEROID? (Episode 1) - WINDY Warp Orb": "" +
		"Destroy the platform on the left side of the screen next to the four \"welcoming\" launchers,\n" +
		"then destroy the two heavy missile launchers that spawn afterwards.\n" +
		"After the miniboss launcher, an additional tank will spawn containing this item.",
	"ASTEROID? (Episode 1) - Quick Shot 1": "" +
		"Destroy the two ships after the miniboss launcher within 1 1/2 seconds of them spawning.",
	"TORM (Episode 2) - Ship Fleeing Dragon Secret": "" +
		"One plane will stick around long enough for a dragon to fly towards it. Shoot it as it starts to flee.",
	"SAWBLADES (Episode 3) - SuperCarrot Secret Drop": "" +
		"Throughout the level, carrot-shaped ships will fly towards you.\n" +
		"Destroy all of them, and the last will yield this item.",
	"TYRIAN X (Episode 3) - First U-Ship Secret": "" +
		"Wait for the first pair of U-Ship formations to start heading upwards.",
	"TYRIAN X (Episode 3) - Second Secret, Same as the First": "" +
		"As with the first U-Ship secret, wait for the second pair of U-Ship formations to start heading upwards.",
	"SURFACE (Episode 4) - WINDY Warp Orb": "" +
		"Destroy all four waves of ships flying in a V formation at the start of the level.\n" +
		"One of the ships flying through arches later on will then yield this item.",
	"DESERTRUN (Episode 4) - Afterburner Smooth Flying": "" +
		"Fly through all the arches in the Afterburner section. The oasis will then throw out this item.",
	"EYESPY (Episode 4) - Billiard Break Secret": "" +
		"Near the end of the level, eyes will line up in a formation that resembles a rack of 9-ball, and then\n" +
		"be hit by a green eye that breaks them up.\n" +
		"Wait until the eyes get broken up, and the topmost one will yield this item.",
}
