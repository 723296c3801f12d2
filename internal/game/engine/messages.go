package engine

// Player-facing response text.
const (
	msgEmptyCommand = "Please enter a command."
	msgGoodbye      = "Goodbye!"
	msgGoWhere      = "Go where? Try 'go north', 'go south', etc."
	msgTakeWhat     = "Take what? Try 'take [item name]'."
	msgDropWhat     = "Drop what? Try 'drop [item name]'."
	msgUseWhat      = "Use what? Try 'use [item name]'."
	msgUnknownFmt   = "I don't understand '%s'. Type 'help' for a list of commands."

	msgNoExits       = "There are no obvious exits."
	msgExitsFmt      = "Exits: %s"
	msgYouCanSee     = "You can see:"
	msgNotHereFmt    = "You don't see any %s here."
	msgCantGoFmt     = "You can't go %s from here."
	msgLockedFmt     = "The way %s is %s. %s"
	msgTakeFmt       = "You take the %s."
	msgCantTakeFmt   = "You can't take the %s."
	msgDropFmt       = "You drop the %s."
	msgDontHaveFmt   = "You don't have a %s."
	msgEmptyInv      = "Your inventory is empty."
	msgCarrying      = "You are carrying:"
	msgNothingHapFmt = "You use the %s, but nothing happens."
)
