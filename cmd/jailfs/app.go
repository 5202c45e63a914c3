package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"jailfs/internal/ui"
)

// App ties the command interpreter to whichever session frontend is active.
type App struct {
	interpreter *ui.Interpreter
	uiHandler   *ui.Handler
}

// NewApp returns a pointer to a new [App].
func NewApp(interpreter *ui.Interpreter, uiHandler *ui.Handler) *App {
	return &App{
		interpreter: interpreter,
		uiHandler:   uiHandler,
	}
}

// Launch runs a plain terminal session reading commands from standard
// input. With an attached UI the session is driven there instead and Launch
// returns immediately.
func (app *App) Launch(ctx context.Context) error {
	if app.uiHandler != nil {
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Print(app.interpreter.Prompt())

		if !scanner.Scan() {
			break
		}

		output, quit := app.interpreter.Execute(scanner.Text())
		if output != "" {
			fmt.Println(output)
		}
		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}

// LaunchUI starts the shell user interface.
func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}
