package hello_world

const (
	// AddonID is the name of the addon as it appears in the kickstart %addon header.
	AddonID = "org_fedora_hello_world"

	// Namespace is the D-Bus namespace of the addon, below Anaconda's addons
	// namespace. It doubles as the well-known service name and the interface name.
	Namespace     = "org.fedoraproject.Anaconda.Addons.HelloWorld"
	ServiceName   = Namespace
	InterfaceName = Namespace
	ObjectPath    = "/org/fedoraproject/Anaconda/Addons/HelloWorld"

	// TaskInterfaceName is implemented by every task object published by the service.
	TaskInterfaceName = "org.fedoraproject.Anaconda.Task"
	TaskPathPrefix    = ObjectPath + "/Tasks"

	// ErrorName is the D-Bus error returned by failing method calls.
	ErrorName = "org.fedoraproject.Anaconda.Error"

	// OutputFilePath is where the text ends up, relative to the installed system root.
	OutputFilePath = "root/hello_world.txt"
)

// Environments a spoke can be asked to run in.
const (
	AnacondaEnvironment     = "anaconda"
	InitialSetupEnvironment = "initial-setup"
)
