// Package cli declares the gnote command table.
package cli

import (
	"fmt"

	"github.com/gnote-tools/cli/internal/dispatchers"
)

// Commands returns the grammar of every gnote command, in the order the
// completion lists them.
func Commands() []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		// user
		{
			Name:  "user",
			Help:  "Show information about active user.",
			Flags: []dispatchers.FlagSpec{boolFlag("--full", "", "Show full information.")},
		},
		{
			Name: "login",
			Help: "Authorize in Evernote.",
		},
		{
			Name:  "logout",
			Help:  "Logout from Evernote.",
			Flags: []dispatchers.FlagSpec{boolFlag("--force", "", "Don't ask about logging out.")},
		},
		{
			Name: "settings",
			Help: "Show and edit current settings.",
			Arguments: []dispatchers.ArgumentSpec{
				getter("--editor", "Set the editor, which use to edit and create notes."),
				getter("--note_ext", "Set default note's extension for markdown and raw formats. Defaults to '.markdown, .org'"),
				getter("--extras", "Set the markdown extensions used to convert markdown text to HTML."),
			},
		},

		// notes
		{
			Name: "create",
			Help: "Create note in Evernote.",
			Arguments: []dispatchers.ArgumentSpec{
				required("--title", "-t", "The note title."),
				{
					Name:    "--content",
					Alias:   "-c",
					Help:    "The note content.",
					Default: dispatchers.Some(WriteContent),
				},
				repeated("--tag", "-tg", "Tag to be added to the note."),
				optional("--created", "-cr", dateHelp),
				repeated("--resource", "-rs", "Add a resource to the note."),
				optional("--notebook", "-nb", "Set the notebook where to save note."),
				optional("--reminder", "-r", reminderHelp),
				optional("--url", "-u", "Set the URL for the note."),
			},
			Flags: rawFlags,
		},
		{
			Name:     "create-linked",
			Help:     "Create Linked note in Evernote",
			FirstArg: "--notebook",
			Arguments: []dispatchers.ArgumentSpec{
				required("--title", "-t", "The note title."),
				required("--notebook", "-nb", "Name of the linked notebook in which to create this note."),
			},
		},
		{
			Name:     "find",
			Help:     "Search notes in Evernote.",
			FirstArg: "--search",
			Arguments: []dispatchers.ArgumentSpec{
				{
					Name:       "--search",
					Alias:      "-s",
					Help:       "Text to search.",
					EmptyValue: dispatchers.Some("*"),
				},
				repeated("--tag", "-tg", "Tag sought on the notes."),
				optional("--notebook", "-nb", "Notebook containing the notes."),
				optional("--date", "-d", "Set date in 'yyyy-mm-dd' format or date range 'yyyy-mm-dd/yyyy-mm-dd' format."),
				{
					Name:  "--count",
					Alias: "-cn",
					Help:  "How many notes to show in the result list.",
					Type:  dispatchers.TypeInt,
				},
			},
			Flags: findFlags,
		},
		{
			Name:     "edit",
			Help:     "Edit note in Evernote.",
			FirstArg: "--note",
			Arguments: []dispatchers.ArgumentSpec{
				required("--note", "-n", fmt.Sprintf(noteRefHelp, "edit")),
				optional("--title", "-t", "Set new title of the note."),
				optional("--content", "-c", "Set new content of the note."),
				repeated("--resource", "-rs", "Add a resource to the note."),
				repeated("--tag", "-tg", "Set new tag for the note."),
				optional("--created", "-cr", dateHelp),
				optional("--notebook", "-nb", "Assign new notebook for the note."),
				optional("--reminder", "-r", reminderHelp+" Use DELETE to remove reminder from a note."),
				optional("--url", "-u", "Set the URL for the note."),
			},
			Flags: rawFlags,
		},
		{
			Name:     "edit-linked",
			Help:     "Edit linked note in a shared notebook.",
			FirstArg: "--notebook",
			Arguments: []dispatchers.ArgumentSpec{
				required("--notebook", "-nb", "Name of the linked Notebook in which the note resides."),
				required("--note", "-n", "Title of the Note you want to edit."),
			},
		},
		{
			Name:      "show",
			Help:      "Output note in the terminal.",
			FirstArg:  "--note",
			Arguments: []dispatchers.ArgumentSpec{required("--note", "-n", fmt.Sprintf(noteRefHelp, "show"))},
			Flags:     []dispatchers.FlagSpec{boolFlag("--raw", "-w", "Show the raw note body")},
		},
		{
			Name:      "remove",
			Help:      "Remove note from Evernote.",
			FirstArg:  "--note",
			Arguments: []dispatchers.ArgumentSpec{required("--note", "-n", fmt.Sprintf(noteRefHelp, "remove"))},
			Flags:     []dispatchers.FlagSpec{boolFlag("--force", "-f", "Don't ask about removing.")},
		},
		{
			Name:      "dedup",
			Help:      "Find and remove duplicate notes in Evernote.",
			Arguments: []dispatchers.ArgumentSpec{optional("--notebook", "-nb", "In which notebook search for duplicates.")},
		},
		{
			Name:     "sync",
			Help:     "Synchronize the files of a directory with a notebook.",
			FirstArg: "--path",
			Arguments: []dispatchers.ArgumentSpec{
				required("--path", "-p", "Path to the directory to synchronize."),
				{
					Name:    "--mask",
					Alias:   "-m",
					Help:    "Mask of the files to synchronize. Defaults to '*.*'.",
					Default: dispatchers.Some("*.*"),
				},
				{
					Name:    "--format",
					Alias:   "-f",
					Help:    "Format of the file contents: plain, markdown or html. Defaults to plain.",
					Default: dispatchers.Some("plain"),
				},
				optional("--notebook", "-nb", "Notebook to synchronize with. Defaults to the directory name."),
				optional("--logpath", "-l", "Write the sync log to this file."),
			},
			Flags: []dispatchers.FlagSpec{boolFlag("--two-way", "-tw", "Also write the notes of the notebook to files.")},
		},

		// notebooks
		{
			Name:  "notebook-list",
			Help:  "Show the list of existing notebooks in your Evernote.",
			Flags: []dispatchers.FlagSpec{boolFlag("--guid", "-id", "Replace ID with GUID of each notebook in results.")},
		},
		{
			Name: "notebook-create",
			Help: "Create new notebook.",
			Arguments: []dispatchers.ArgumentSpec{
				required("--title", "-t", "Set the title of new notebook."),
				optional("--stack", "", "Specify notebook stack container."),
			},
		},
		{
			Name:     "notebook-edit",
			Help:     "Edit/rename notebook.",
			FirstArg: "--notebook",
			Arguments: []dispatchers.ArgumentSpec{
				required("--notebook", "-nb", "The name of a notebook to rename."),
				optional("--title", "-t", "Set the new name of notebook."),
			},
		},
		{
			Name:      "notebook-remove",
			Help:      "Remove notebook.",
			FirstArg:  "--notebook",
			Arguments: []dispatchers.ArgumentSpec{required("--notebook", "-nb", "The name of a notebook to remove.")},
			Flags:     []dispatchers.FlagSpec{boolFlag("--force", "", "Don't ask about removing notebook.")},
		},

		// tags
		{
			Name:  "tag-list",
			Help:  "Show the list of existing tags in your Evernote.",
			Flags: []dispatchers.FlagSpec{boolFlag("--guid", "-id", "Replace ID with GUID of each tag in results.")},
		},
		{
			Name:      "tag-create",
			Help:      "Create new tag.",
			Arguments: []dispatchers.ArgumentSpec{required("--title", "-t", "Set the title of new tag.")},
		},
		{
			Name:     "tag-edit",
			Help:     "Edit/rename tag.",
			FirstArg: "--tagname",
			Arguments: []dispatchers.ArgumentSpec{
				required("--tagname", "-tgn", "The name of a tag to rename."),
				optional("--title", "-t", "Set the new name of tag."),
			},
		},
		{
			Name:      "tag-remove",
			Help:      "Remove tag.",
			FirstArg:  "--tagname",
			Arguments: []dispatchers.ArgumentSpec{required("--tagname", "-tgn", "The name of a tag to remove.")},
			Flags:     []dispatchers.FlagSpec{boolFlag("--force", "-f", "Don't ask about removing.")},
		},

		// tooling
		{
			Name:     "completion",
			Help:     "Show how to install shell completion, or print the script.",
			FirstArg: "--shell",
			Arguments: []dispatchers.ArgumentSpec{
				{
					Name:       "--shell",
					Help:       "Shell to complete: bash, zsh or fish. Defaults to the running shell.",
					EmptyValue: dispatchers.Some(""),
				},
			},
			Flags: []dispatchers.FlagSpec{boolFlag("--script", "", "Print the completion script instead of instructions.")},
		},
		{
			Name: "version",
			Help: "Show gnote version.",
		},
		{
			Name: "config-list",
			Help: "List configuration values.",
		},
		{
			Name:      "config-get",
			Help:      "Get a configuration value.",
			FirstArg:  "--key",
			Arguments: []dispatchers.ArgumentSpec{required("--key", "", "Configuration key to read.")},
		},
		{
			Name:     "config-set",
			Help:     "Set a configuration value.",
			FirstArg: "--key",
			Arguments: []dispatchers.ArgumentSpec{
				required("--key", "", "Configuration key to write."),
				required("--value", "", "Value to store."),
			},
		},
		{
			Name:      "config-unset",
			Help:      "Remove a configuration value.",
			FirstArg:  "--key",
			Arguments: []dispatchers.ArgumentSpec{required("--key", "", "Configuration key to remove.")},
		},
	}
}

// BuildTable returns the validated command table.
func BuildTable() *dispatchers.Table {
	return dispatchers.MustTable(Commands()...)
}
