package console

// User-facing strings for the interactive loop. Kept in one place so the
// session logic reads as control flow, not formatting.
const (
	exitKeyword = "quit"

	inputInstructions = "Enter the row-column pair of two cards to flip, or type \"" + exitKeyword + "\" to end the game."
	inputExample      = "Example: \"(0, 0) (0, 1)\" or \"0 0 0 1\""
	inputSuggestion   = "Please choose two different, available cards as an ordered pair."

	matchMadeMessage = "You made a match! This pair will be removed."
	noMatchMessage   = "No match found. Please try again or type \"" + exitKeyword + "\" to exit."

	gameOverMessage = "Game Over."
	gameWonMessage  = "You Won!"

	affirmativeResponse = "yes"
	negativeResponse    = "no"
	replayPrompt        = "Would you like to play again? \"" + affirmativeResponse + "\" or \"" + negativeResponse + "\""

	inputPrompt  = "Input: "
	answerPrompt = "Answer: "

	alreadyPairedMessage = "One or more of the given cards has already been paired."
	outOfBoundsMessage   = "The given positions aren't on the board."
	duplicateCardMessage = "The given positions must be different."
	invalidInputMessage  = "Invalid input!"
)
