package modal

import "fmt"

// DefaultBuilders returns the builder registry for every supported modal
// type. Each builder validates its options; a mismatched options struct
// fails the build and drops the request.
func DefaultBuilders() map[ModalType]Builder {
	return map[ModalType]Builder{
		ModalError: func(req Request) (Modal, error) {
			opts, ok := req.Options.(ErrorOptions)
			if !ok {
				return nil, fmt.Errorf("modal %s: expected ErrorOptions, got %T", req.Type, req.Options)
			}
			return NewErrorModal(opts.Title, opts.Message), nil
		},
		ModalConfirm: func(req Request) (Modal, error) {
			opts, ok := req.Options.(ConfirmOptions)
			if !ok {
				return nil, fmt.Errorf("modal %s: expected ConfirmOptions, got %T", req.Type, req.Options)
			}
			return NewConfirmModal(opts), nil
		},
		ModalRename: func(req Request) (Modal, error) {
			opts, ok := req.Options.(RenameOptions)
			if !ok {
				return nil, fmt.Errorf("modal %s: expected RenameOptions, got %T", req.Type, req.Options)
			}
			return NewRenameModal(opts), nil
		},
		ModalMute: func(req Request) (Modal, error) {
			opts, ok := req.Options.(MuteOptions)
			if !ok {
				return nil, fmt.Errorf("modal %s: expected MuteOptions, got %T", req.Type, req.Options)
			}
			return NewMuteModal(opts), nil
		},
		ModalIncomingCall: func(req Request) (Modal, error) {
			opts, ok := req.Options.(IncomingCallOptions)
			if !ok {
				return nil, fmt.Errorf("modal %s: expected IncomingCallOptions, got %T", req.Type, req.Options)
			}
			return NewIncomingCallModal(opts), nil
		},
	}
}
