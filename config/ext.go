package config

type SerialPortExt TagString

func (e SerialPortExt) GetBaud(defaultValue int) (int, error) {
	return TagString(e).GetInt("baud", defaultValue)
}
