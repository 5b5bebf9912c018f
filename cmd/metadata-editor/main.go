package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/metadata-editor/internal/cli"
	"github.com/ytget/metadata-editor/internal/config"
	"github.com/ytget/metadata-editor/internal/exiftool"
	"github.com/ytget/metadata-editor/internal/platform"
	"github.com/ytget/metadata-editor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.metadata-editor"
	AppName = "Metadata Editor"
)

func main() {
	if cli.Execute(version, os.Args[1:]) {
		return
	}

	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewEditorTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	toolPath, mode := platform.ResolveToolPath(settings.GetExiftoolPath())
	log.Printf("Run mode: %s, ExifTool path: %s", mode, toolPath)
	if !platform.FileExists(toolPath) {
		log.Printf("ExifTool not found at %s", toolPath)
	}

	inspector := exiftool.NewService(toolPath, exiftool.NewExecRunner())

	ui.NewRootUI(myWindow, myApp, inspector, settings, nil)

	myWindow.ShowAndRun()
}
