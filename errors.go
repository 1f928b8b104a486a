package turboshake

import "errors"

// ErrStillAbsorbing is returned by Squeeze when Finalize has not yet been
// called. The instance is left unmodified; call Finalize then retry.
var ErrStillAbsorbing = errors.New("turboshake: still absorbing data; call Finalize before Squeeze")

// ErrAlreadyFinalized is returned by Absorb or Finalize once the instance has
// already been finalized. The instance is left unmodified; call Reset to
// begin a new absorb/finalize/squeeze cycle.
var ErrAlreadyFinalized = errors.New("turboshake: already finalized; call Reset to absorb again")
