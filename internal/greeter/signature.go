package greeter

// defaultSignature is Signature's sole named implementation.
type defaultSignature struct{}

func (s *defaultSignature) SignOff() string { return "Kind regards" }
