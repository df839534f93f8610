// Package tags implements tag-list, tag-create, tag-edit and tag-remove.
package tags

import (
	"context"
	"fmt"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

func List(ctx context.Context, app *domain.Application, req commands.TagListRequest) error {
	return list(ctx, req, NewDeps(app))
}

func list(ctx context.Context, req commands.TagListRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Loading tags...")
	tags, err := svc.ListTags(ctx)
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "list tags")
	}

	if err := d.Cache.SetTags(tags); err != nil {
		d.Logger.Warn("tags: cache: %v", err)
	}

	ui.PrintList(d.Out, "", ui.TagItems(tags), ui.ListOptions{ShowGUID: req.GUID})
	return nil
}

func Create(ctx context.Context, app *domain.Application, req commands.TagCreateRequest) error {
	return create(ctx, req, NewDeps(app))
}

func create(ctx context.Context, req commands.TagCreateRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Creating tag...")
	_, err = svc.CreateTag(ctx, domain.Tag{Name: req.Title})
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "create tag")
	}

	_, _ = d.Out.Println(d.Styler.Success("Tag successfully created."))
	return nil
}

func Edit(ctx context.Context, app *domain.Application, req commands.TagEditRequest) error {
	return edit(ctx, req, NewDeps(app))
}

func edit(ctx context.Context, req commands.TagEditRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	tag, err := d.search(ctx, svc, req.Name)
	if err != nil {
		return err
	}

	d.Progress.SetMessage("Updating tag...")
	err = svc.UpdateTag(ctx, domain.Tag{GUID: tag.GUID, Name: req.Title, ParentGUID: tag.ParentGUID})
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "update tag")
	}

	_, _ = d.Out.Println(d.Styler.Success("Tag successfully updated."))
	return nil
}

func Remove(ctx context.Context, app *domain.Application, req commands.TagRemoveRequest) error {
	return remove(ctx, req, NewDeps(app))
}

func remove(ctx context.Context, req commands.TagRemoveRequest, d Deps) error {
	svc, err := d.Session.Service()
	if err != nil {
		return err
	}

	tag, err := d.search(ctx, svc, req.Name)
	if err != nil {
		return err
	}

	if !req.Force {
		ok, err := d.Terminal.Confirm(fmt.Sprintf("Are you sure you want to delete the tag \"%s\"?", tag.Name))
		if err != nil {
			return err
		}
		if !ok {
			return usage.Cancelled()
		}
	}

	d.Progress.SetMessage("Deleting tag...")
	err = svc.ExpungeTag(ctx, tag.GUID)
	d.Progress.Stop()
	if err != nil {
		return d.Session.Failed(err, "remove tag")
	}

	_, _ = d.Out.Println(d.Styler.Success("Tag successfully removed."))
	return nil
}

// search returns the tag called name, or lets the user pick one.
func (d Deps) search(ctx context.Context, svc domain.NoteService, name string) (*domain.Tag, error) {
	d.Progress.SetMessage("Loading tags...")
	tags, err := svc.ListTags(ctx)
	d.Progress.Stop()
	if err != nil {
		return nil, d.Session.Failed(err, "list tags")
	}

	for i := range tags {
		if tags[i].Name == name {
			return &tags[i], nil
		}
	}
	if len(tags) == 0 {
		return nil, usage.NotFound("Tags have not been found.")
	}

	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = t.Name
	}
	i, err := d.Terminal.Select(ui.FoundLine(len(tags)), labels)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(tags) {
		return nil, usage.Cancelled()
	}
	return &tags[i], nil
}
