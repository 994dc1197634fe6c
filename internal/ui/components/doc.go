// Package components provides the interactive controls of the kit and the
// renderer that turns resolved style directives into terminal output.
//
// # Controls
//
// Button is an action element. Its style comes from variant.Resolve, its
// loading property drives a small state machine:
//
//	NotLoading -> Loading                      (LoadingOn)
//	NotLoading -> PendingLoading -> Loading    (LoadingAfter)
//
// A pending transition is a tea.Cmd waiting on a Clock timer. Changing the
// loading property or calling Dispose cancels it, and a replaced timer's
// message is ignored. A button with an Href renders as a hyperlink.
//
// Radio is a selectable element. It is controlled when created with a
// non-nil Checked and uncontrolled otherwise; the mode never changes
// afterwards. Its indicator is wrapped by a ripple.Model.
//
//	r, _ := components.NewRadio(components.RadioProps{
//		Label:   "Apple",
//		Checked: components.Controlled(false),
//		OnChange: func(ev components.ChangeEvent) tea.Cmd {
//			return nil
//		},
//	})
//
// RadioGroup keeps several controlled radios in sync with one value.
//
// # Rendering
//
// Surface maps a collapsed variant.Set onto a lipgloss.Style. Themes travel
// in a RenderContext so several can coexist:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := button.ViewWithContext(ctx)
//
// Components also accept StyleFunc appliers through WithAppliers for
// decoration that sits outside the resolved directives.
package components
