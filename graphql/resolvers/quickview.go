package resolvers

import (
	"context"
	"errors"
	"fmt"

	"quickview.GO/graphql"
	gqlmodels "quickview.GO/graphql/models"
	"quickview.GO/service/quickview"
)

func (r *QueryResolver) QuickView(ctx context.Context, args graphql.HandleArgs) (*gqlmodels.QuickView, error) {
	ss, err := r.svc.Open(ctx, "", args.Handle)
	if errors.Is(err, quickview.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := quickview.BuildView(ss, r.view)
	if err != nil {
		return nil, err
	}
	return gqlmodels.FromView(v), nil
}

func (r *QueryResolver) ResolveVariant(ctx context.Context, args graphql.SelectionArgs) (*gqlmodels.Resolution, error) {
	ss, err := r.open(ctx, "", args)
	if err != nil {
		return nil, err
	}
	res := &gqlmodels.Resolution{Bundles: []*gqlmodels.BundleRule{}}
	variant, fired, err := ss.Evaluate()
	var incomplete *quickview.IncompleteSelectionError
	switch {
	case err == nil:
		res.VariantID = &variant.ID
		res.Bundles = gqlmodels.FromRules(fired)
	case errors.As(err, &incomplete):
		prompt := incomplete.Prompt()
		res.Prompt = &prompt
	case errors.Is(err, quickview.ErrVariantNotFound):
	default:
		return nil, err
	}
	res.State = gqlmodels.Enum(ss.State())
	res.Missing = gqlmodels.FromMissing(ss.Missing())
	return res, nil
}

func (r *QueryResolver) BundleRules() []*gqlmodels.BundleRule {
	return gqlmodels.FromRules(r.svc.Rules())
}

func (r *QueryResolver) AddToCart(ctx context.Context, args graphql.SelectionArgs) (*gqlmodels.AddToCartResult, error) {
	token := graphql.CartTokenFromContext(ctx)
	if token == "" {
		return nil, errors.New("cart token is required")
	}
	ss, err := r.open(ctx, token, args)
	if err != nil {
		return nil, err
	}
	res, err := ss.Confirm(ctx)
	if err != nil {
		var incomplete *quickview.IncompleteSelectionError
		if errors.As(err, &incomplete) {
			return nil, errors.New(incomplete.Prompt())
		}
		return nil, err
	}
	return gqlmodels.FromConfirm(res, quickview.CartPath), nil
}

// open starts a session for args.Handle and applies the selections in order.
func (r *QueryResolver) open(ctx context.Context, token string, args graphql.SelectionArgs) (*quickview.Session, error) {
	ss, err := r.svc.Open(ctx, token, args.Handle)
	if err != nil {
		return nil, err
	}
	for _, sel := range args.Selections {
		pos, err := selectionPosition(ss.Product(), sel)
		if err != nil {
			return nil, err
		}
		if err := ss.Choose(pos, sel.Value); err != nil {
			return nil, err
		}
	}
	return ss, nil
}

func selectionPosition(p quickview.Product, sel graphql.SelectionInput) (int, error) {
	if sel.Position != nil {
		return int(*sel.Position), nil
	}
	if sel.Name == nil {
		return 0, fmt.Errorf("selection %q needs a name or a position", sel.Value)
	}
	for _, o := range p.Options {
		if o.Name == *sel.Name {
			return o.Position, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", quickview.ErrUnknownPosition, *sel.Name)
}
