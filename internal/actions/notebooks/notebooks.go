// Package notebooks implements notebook-list, notebook-create,
// notebook-edit and notebook-remove.
package notebooks

import (
	"context"
	"fmt"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

func List(ctx context.Context, app *domain.Application, req commands.NotebookListRequest) error {
	return list(ctx, req, NewDeps(app))
}

func list(ctx context.Context, req commands.NotebookListRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Loading notebooks...")
	notebooks, err := svc.ListNotebooks(ctx)
	if err != nil {
		d.Progress.Stop()
		return d.Session.Failed(err, "list notebooks")
	}
	linked, err := svc.ListLinkedNotebooks(ctx)
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "list linked notebooks")
	}

	if err := d.Cache.SetNotebooks(notebooks); err != nil {
		d.Logger.Warn("notebooks: cache: %v", err)
	}

	ui.PrintList(d.Out, "", ui.NotebookItems(notebooks, linked), ui.ListOptions{ShowGUID: req.GUID})
	return nil
}

func Create(ctx context.Context, app *domain.Application, req commands.NotebookCreateRequest) error {
	return create(ctx, req, NewDeps(app))
}

func create(ctx context.Context, req commands.NotebookCreateRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Creating notebook...")
	_, err = svc.CreateNotebook(ctx, domain.Notebook{Name: req.Title, Stack: req.Stack})
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "create notebook")
	}

	_, _ = d.Out.Println(d.Styler.Success("Notebook successfully created."))
	return nil
}

func Edit(ctx context.Context, app *domain.Application, req commands.NotebookEditRequest) error {
	return edit(ctx, req, NewDeps(app))
}

func edit(ctx context.Context, req commands.NotebookEditRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	nb, err := d.search(ctx, svc, req.Notebook)
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Updating notebook...")
	err = svc.UpdateNotebook(ctx, domain.Notebook{GUID: nb.GUID, Name: req.Title, Stack: nb.Stack})
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "update notebook")
	}

	_, _ = d.Out.Println(d.Styler.Success("Notebook successfully updated."))
	return nil
}

func Remove(ctx context.Context, app *domain.Application, req commands.NotebookRemoveRequest) error {
	return remove(ctx, req, NewDeps(app))
}

func remove(ctx context.Context, req commands.NotebookRemoveRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	nb, err := d.search(ctx, svc, req.Notebook)
	if err != nil {
		return err
	}

	if !req.Force {
		ok, err := d.Terminal.Confirm(fmt.Sprintf("Are you sure you want to delete this notebook: \"%s\"?", nb.Name))
		if err != nil {
			return err
		}
		if !ok {
			return usage.Cancelled()
		}
	}

	d.Progress.SetMessage("Deleting notebook...")
	err = svc.ExpungeNotebook(ctx, nb.GUID)
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "remove notebook")
	}

	_, _ = d.Out.Println(d.Styler.Success("Notebook successfully removed."))
	return nil
}

// search returns the notebook called name, or lets the user pick one.
func (d Deps) search(ctx context.Context, svc domain.NoteService, name string) (*domain.Notebook, error) {
	d.Progress.SetMessage("Loading notebooks...")
	notebooks, err := svc.ListNotebooks(ctx)
	d.Progress.Stop()
	if err != nil {
		return nil, d.Session.Failed(err, "list notebooks")
	}

	for i := range notebooks {
		if notebooks[i].Name == name {
			return &notebooks[i], nil
		}
	}
	if len(notebooks) == 0 {
		return nil, usage.NotFound("Notebooks have not been found.")
	}

	labels := make([]string, len(notebooks))
	for i, nb := range notebooks {
		labels[i] = nb.Name
	}
	i, err := d.Terminal.Select(ui.FoundLine(len(notebooks)), labels)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(notebooks) {
		return nil, usage.Cancelled()
	}
	return &notebooks[i], nil
}
