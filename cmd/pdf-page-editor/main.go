package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mzen17/PDF-Page-Editor/internal/config"
	"github.com/mzen17/PDF-Page-Editor/internal/editor"
	"github.com/mzen17/PDF-Page-Editor/internal/pdf"
	"github.com/mzen17/PDF-Page-Editor/internal/scanner"
	"github.com/mzen17/PDF-Page-Editor/pkg/logger"
	"github.com/mzen17/PDF-Page-Editor/pkg/utils"
	"github.com/mzen17/PDF-Page-Editor/pkg/version"
)

type PageEditorGUI struct {
	// Core components
	window      fyne.Window
	log         *logger.Logger
	logFileName string
	cfg         *config.Config
	session     *editor.Session
	importer    pdf.DocumentImporter
	exporter    pdf.DocumentExporter
	scanner     *scanner.DirectoryScanner

	// UI components
	strip       *pageStrip
	stripScroll *container.Scroll
	status      *widget.Label
}

func NewPageEditorGUI() *PageEditorGUI {
	log, logFileName, err := setupLogging()
	if err != nil {
		log = logger.New(logger.WithPrefix("[pdf-page-editor] "))
		fmt.Printf("Warning: Failed to set up logging: %v\n", err)
	}

	cfg := loadConfig(log)
	log.SetVerbose(cfg.Verbose)

	editorApp := app.New()
	window := editorApp.NewWindow("PDF Page Editor")

	renderer := pdf.NewThumbnailRenderer(cfg.ThumbnailBox())

	return &PageEditorGUI{
		window:      window,
		log:         log,
		logFileName: logFileName,
		cfg:         cfg,
		session:     editor.NewSession(),
		importer:    pdf.NewImporter(renderer, log),
		exporter:    pdf.NewExporter(log),
		scanner:     scanner.New(log),
	}
}

func loadConfig(log *logger.Logger) *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		log.Debug("No user config directory: %v", err)
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Info("Ignoring unreadable config %s: %v", path, err)
		return config.Default()
	}
	return cfg
}

func (gui *PageEditorGUI) setupUI() {
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Add PDF...", gui.handleAddPDF),
			fyne.NewMenuItem("Add Folder...", gui.handleAddFolder),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Export...", gui.handleExport),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				dialog.ShowInformation(
					"About PDF Page Editor",
					version.GetDetailedVersionInfo(),
					gui.window,
				)
			}),
		),
	)
	gui.window.SetMainMenu(mainMenu)

	addBtn := widget.NewButton("Add PDF...", gui.handleAddPDF)
	addBtn.Importance = widget.HighImportance

	addFolderBtn := widget.NewButton("Add Folder...", gui.handleAddFolder)

	exportBtn := widget.NewButton("Export...", gui.handleExport)
	exportBtn.Importance = widget.HighImportance

	hint := widget.NewLabel("Click to select, Shift for range, Ctrl/Cmd to toggle, drag to reorder.")
	hint.Truncation = fyne.TextTruncateEllipsis

	toolbar := container.NewHBox(addBtn, addFolderBtn, layout.NewSpacer(), hint, layout.NewSpacer(), exportBtn)

	gui.status = widget.NewLabel("Add a PDF to get started.")
	gui.strip = newPageStrip(gui.session, gui.cfg.ThumbnailBox(), gui.updateStatus)
	gui.stripScroll = container.NewHScroll(gui.strip)

	content := container.NewBorder(
		container.NewPadded(toolbar),
		container.NewPadded(gui.status),
		nil, nil,
		gui.stripScroll,
	)

	gui.window.SetContent(content)
	gui.window.Resize(fyne.NewSize(gui.cfg.Window.Width, gui.cfg.Window.Height))
	gui.window.SetFixedSize(false)
}

func (gui *PageEditorGUI) updateStatus(message string) {
	gui.status.SetText(message)
}

func (gui *PageEditorGUI) handleAddPDF() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, gui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if err := gui.importPath(path); err != nil {
			gui.log.Info("Import failed for %s: %v", path, err)
			dialog.ShowError(fmt.Errorf("could not import %s: %v", filepath.Base(path), err), gui.window)
		}
	}, gui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fileDialog.Show()
}

func (gui *PageEditorGUI) handleAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, gui.window)
			return
		}
		if uri == nil {
			return
		}
		gui.importFolder(uri.Path())
	}, gui.window)
}

// importPath loads one document into the session. The strip grows only on
// success; a document that fails to decode leaves the session untouched.
func (gui *PageEditorGUI) importPath(path string) error {
	info, thumbs, err := gui.importer.Import(context.Background(), path)
	if err != nil {
		return err
	}

	gui.session.AddDocument(info, thumbs)
	gui.strip.Reload()
	gui.updateStatus(fmt.Sprintf("Added %s from %s (%d total).",
		pluralPages(info.PageCount), info.Name(), gui.session.Len()))
	return nil
}

func (gui *PageEditorGUI) importFolder(dir string) {
	pdfs, err := gui.scanner.FindPDFs(context.Background(), dir)
	if err != nil {
		dialog.ShowError(err, gui.window)
		return
	}

	var failed []string
	for _, found := range pdfs {
		if err := gui.importPath(found.AbsolutePath); err != nil {
			gui.log.Info("Import failed for %s: %v", found.RelativePath, err)
			failed = append(failed, fmt.Sprintf("%s: %v", found.RelativePath, err))
		}
	}

	if len(failed) > 0 {
		dialog.ShowError(fmt.Errorf("some files could not be imported:\n%s",
			strings.Join(failed, "\n")), gui.window)
	}
}

func (gui *PageEditorGUI) handleExport() {
	if gui.session.IncludedCount() == 0 {
		dialog.ShowError(pdf.ErrNoPagesSelected, gui.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, gui.window)
			return
		}
		if writer == nil {
			return
		}
		chosen := writer.URI().Path()
		_ = writer.Close()

		dest := utils.EnsurePDFExtension(chosen)
		if dest != chosen {
			// The dialog already created an empty file under the bare name.
			removeIfEmpty(chosen)
		}
		gui.exportTo(dest)
	}, gui.window)
	saveDialog.SetFileName("edited.pdf")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	saveDialog.Show()
}

func (gui *PageEditorGUI) exportTo(dest string) {
	refs := gui.session.ExportRefs()
	gui.updateStatus(fmt.Sprintf("Exporting %s...", pluralPages(len(refs))))

	if err := gui.exporter.Export(context.Background(), refs, dest); err != nil {
		gui.log.Info("Export to %s failed: %v", dest, err)
		removeIfEmpty(dest)
		gui.updateStatus("Export failed.")
		dialog.ShowError(fmt.Errorf("export failed: %v", err), gui.window)
		return
	}

	gui.updateStatus(fmt.Sprintf("Exported %s to %s.", pluralPages(len(refs)), filepath.Base(dest)))
	dialog.ShowInformation(
		"Export Complete",
		exportSuccessMessage(len(refs), dest, gui.logFileName),
		gui.window,
	)
}

// exportSuccessMessage summarizes a finished export. The log path is omitted
// when logging setup degraded to stdout-only at startup.
func exportSuccessMessage(pages int, dest, logFile string) string {
	message := fmt.Sprintf("Exported %s to:\n%s", pluralPages(pages), dest)
	if logFile != "" {
		message += fmt.Sprintf("\n\nLog file saved to:\n%s", logFile)
	}
	return message
}

// removeIfEmpty clears the zero-byte husk the save dialog creates when a
// later step fails or the final name differs. Files with content are never
// touched.
func removeIfEmpty(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() != 0 {
		return
	}
	_ = os.Remove(path)
}

func setupLogging() (*logger.Logger, string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	logsDir := filepath.Join(homeDir, ".pdf-page-editor", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFileName := filepath.Join(logsDir, "pdf-page-editor.log")
	rotating := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	multiWriter := io.MultiWriter(os.Stdout, rotating)
	log := logger.New(
		logger.WithPrefix("[pdf-page-editor] "),
		logger.WithOutput(multiWriter),
	)

	return log, logFileName, nil
}

func (gui *PageEditorGUI) Run() {
	gui.setupUI()
	gui.window.ShowAndRun()
}

func main() {
	gui := NewPageEditorGUI()
	gui.Run()
}
