package coaching

import "github.com/pable/go-lol-coach/internal/model"

// tip is an entry of a fixed tip bank.
type tip struct {
	id          string
	title       string
	description string
}

var categoryTips = map[model.ScoreCategory][]tip{
	model.CategoryCS: {
		{"cs-last-hit", "Focus on last hits", "Practise last-hitting under tower and stop auto-attacking minions you cannot secure; every missed wave is about 125 gold."},
		{"cs-side-waves", "Collect side waves", "Between objectives, catch the wave that is about to crash into your tower instead of grouping mid with nothing to do."},
		{"cs-recall-timing", "Time your recalls", "Recall after shoving a wave so you lose as few minions as possible while shopping."},
		{"cs-camps", "Take nearby camps", "When a lane is pushed and no fight is coming, clear the closest jungle camp on your side."},
	},
	model.CategoryVision: {
		{"vision-trinket", "Use your trinket on cooldown", "A ward trinket sitting on cooldown is free information; place it before it comes back up."},
		{"vision-control", "Always carry a control ward", "Buy a control ward every recall and place it in a river entrance or an objective pit."},
		{"vision-sweep", "Sweep before objectives", "Swap to the sweeper mid game and clear enemy vision 60 seconds before dragon or baron spawns."},
		{"vision-deep", "Ward ahead of your team", "Place wards in the enemy jungle entrances you are about to walk through, not behind you."},
	},
	model.CategoryPositioning: {
		{"pos-respect-fog", "Respect missing enemies", "When three or more enemies are not visible, assume they are coming for you and play near your team."},
		{"pos-tower-range", "Stay out of enemy tower range", "Do not chase into tower range unless the tower is tanking minions or the kill is certain."},
		{"pos-escape-path", "Keep an escape path", "Before trading, check where you will walk if the fight goes wrong and keep a summoner spell for it."},
		{"pos-group", "Move with your team", "In mid and late game, walk with at least one ally when crossing the river or entering enemy jungle."},
	},
	model.CategoryObjectives: {
		{"obj-timers", "Track objective timers", "Note when dragon and baron respawn and start setting up about 45 seconds early."},
		{"obj-priority", "Push before objectives", "Shove your lane before an objective spawns so you can move without losing farm."},
		{"obj-trade", "Trade objectives cross-map", "If you cannot contest an objective, take a tower or a different objective at the same time."},
	},
	model.CategoryTrading: {
		{"trade-spikes", "Fight on your power spikes", "Take trades right after completing an item or hitting a key level, and avoid them just before the enemy does."},
		{"trade-cooldowns", "Trade around cooldowns", "Engage when the enemy's key ability is on cooldown and back off when yours is."},
		{"trade-gold", "Respect gold deficits", "When you are an item behind, farm safely and wait for your team instead of forcing even fights."},
	},
}

var roleTips = map[model.Role][]tip{
	model.RoleTop: {
		{"role-top-wave", "Manage your wave", "Freeze near your tower when ahead and slow-push before recalling; top lane is decided by wave state."},
		{"role-top-tp", "Use teleport for fights", "Keep teleport for bot-side fights and objectives rather than only returning to lane."},
	},
	model.RoleJungle: {
		{"role-jg-path", "Plan your first clear", "Decide where you want to be at three minutes based on which lanes can follow up a gank."},
		{"role-jg-track", "Track the enemy jungler", "Use lane priority and camp timers to guess where the enemy jungler is and counter-gank."},
		{"role-jg-objectives", "Be at every objective", "Organise your clears so you are near the pit when dragon or herald spawns."},
	},
	model.RoleMid: {
		{"role-mid-roam", "Roam after shoving", "Push the wave first, then roam; roaming with a wave in the middle costs farm and tower plates."},
		{"role-mid-river", "Control river", "Ward both river entrances so your jungler can invade or defend with information."},
	},
	model.RoleBottom: {
		{"role-adc-position", "Stay at max range", "In fights, hit the closest target you can reach safely instead of walking forward for a priority target."},
		{"role-adc-farm", "Farm side lanes mid game", "After first tower, take the bot side wave while your team sets up vision."},
	},
	model.RoleSupport: {
		{"role-sup-vision", "Own the vision game", "Upgrade your ward item and keep wards on the next objective at all times."},
		{"role-sup-roam", "Roam with purpose", "Leave lane when your carry can safely farm and help mid or your jungler with a play."},
	},
}
