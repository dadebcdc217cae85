package breakout

// Rules lists the game rules shown by the CLI and the idle screen.
var Rules = []string{
	"Use the paddle to bounce the ball and break all the bricks.",
	"Each brick has a score value; breaking a brick adds it to the score.",
	"Don't let the ball fall below the paddle, or you lose the round.",
	"Clear all the bricks to win.",
	"Where the ball lands on the paddle sets its angle: the middle sends it straight up, the edges send it wide.",
}
